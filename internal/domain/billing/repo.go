package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrInvoiceNotFound is returned by lookups when no invoice row matches.
var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceRepository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	List(ctx context.Context) ([]*Invoice, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Invoice, error)
}

type ClaimRepository interface {
	Create(ctx context.Context, cl *InsuranceClaim) error
	List(ctx context.Context) ([]*InsuranceClaim, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*InsuranceClaim, error)
}

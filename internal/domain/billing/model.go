package billing

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses.
const (
	InvoicePending   = "PENDING"
	InvoicePaid      = "PAID"
	InvoiceCancelled = "CANCELLED"
)

// Claim statuses.
const (
	ClaimSubmitted = "SUBMITTED"
	ClaimApproved  = "APPROVED"
	ClaimDenied    = "DENIED"
)

// Invoice maps to the invoice table.
type Invoice struct {
	ID        uuid.UUID `db:"id" json:"id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient"`
	Amount    float64   `db:"amount" json:"amount"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type InvoiceInput struct {
	Patient *string     `json:"patient"`
	Amount  interface{} `json:"amount"`
	Status  *string     `json:"status"`
}

// InsuranceClaim maps to the insurance_claim table. A claim references both
// its patient and the invoice being claimed.
type InsuranceClaim struct {
	ID           uuid.UUID `db:"id" json:"id"`
	PatientID    uuid.UUID `db:"patient_id" json:"patient"`
	InvoiceID    uuid.UUID `db:"invoice_id" json:"invoice"`
	PolicyNumber string    `db:"policy_number" json:"policy_number"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type ClaimInput struct {
	Patient      *string `json:"patient"`
	Invoice      *string `json:"invoice"`
	PolicyNumber *string `json:"policy_number"`
	Status       *string `json:"status"`
}

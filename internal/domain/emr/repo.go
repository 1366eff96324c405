package emr

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// GetOrCreateByPatient returns the patient's record, inserting an empty
	// one first if none exists. The insert is an idempotent upsert on the
	// patient_id uniqueness constraint, so concurrent first reads converge
	// on a single row.
	GetOrCreateByPatient(ctx context.Context, patientID uuid.UUID) (*Record, error)
	Update(ctx context.Context, r *Record) error
}

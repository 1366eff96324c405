package emr

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/domain/patient"
	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

// PatientDirectory is the slice of the patient store this service needs.
type PatientDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	records  Repository
	patients PatientDirectory
}

func NewService(records Repository, patients PatientDirectory) *Service {
	return &Service{records: records, patients: patients}
}

// Get returns the patient's record, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, patientID uuid.UUID) (*Record, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, rest.PatientNotFound()
		}
		return nil, err
	}
	return s.records.GetOrCreateByPatient(ctx, patientID)
}

// Update lazily creates the record if needed, then applies the provided
// fields. Validation failure leaves the stored record unchanged.
func (s *Service) Update(ctx context.Context, patientID uuid.UUID, fields map[string]interface{}) (*Record, error) {
	if _, err := s.patients.GetByID(ctx, patientID); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return nil, rest.PatientNotFound()
		}
		return nil, err
	}
	rec, err := s.records.GetOrCreateByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if verr := rec.ApplyFields(fields); verr != nil {
		return nil, verr
	}
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

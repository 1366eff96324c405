package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// Register validates the allow-listed registration fields and inserts the
// patient. Duplicate emails surface as a field error, not a server error.
func (s *Service) Register(ctx context.Context, in *RegistrationInput) (*Patient, error) {
	verr := rest.NewValidationError()

	if in.FullName == nil || *in.FullName == "" {
		verr.Add("full_name", rest.MsgRequired)
	}
	if in.Email == nil || *in.Email == "" {
		verr.Add("email", rest.MsgRequired)
	} else if !rest.ValidEmail(*in.Email) {
		verr.Add("email", rest.MsgInvalidEmail)
	}
	if in.Phone == nil || *in.Phone == "" {
		verr.Add("phone", rest.MsgRequired)
	}
	if in.DateOfBirth == nil || *in.DateOfBirth == "" {
		verr.Add("date_of_birth", rest.MsgRequired)
	} else if !rest.ValidDate(*in.DateOfBirth) {
		verr.Add("date_of_birth", rest.MsgInvalidDate)
	}
	if in.Address == nil || *in.Address == "" {
		verr.Add("address", rest.MsgRequired)
	}
	if !verr.Empty() {
		return nil, verr
	}

	if _, err := s.patients.GetByEmail(ctx, *in.Email); err == nil {
		verr.Add("email", "patient with this email already exists.")
		return nil, verr
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	p := &Patient{
		FullName:    *in.FullName,
		Email:       *in.Email,
		Phone:       *in.Phone,
		DateOfBirth: *in.DateOfBirth,
		Address:     *in.Address,
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	p, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, rest.PatientNotFound()
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// Delete removes the patient. Appointments, invoices, claims and the EMR go
// with it through the store's cascade rules; a hospital link nulls out
// without touching the hospital row.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.patients.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return rest.PatientNotFound()
		}
		return err
	}
	return s.patients.Delete(ctx, id)
}

package appointment

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

var validStatuses = map[string]bool{
	StatusBooked: true, StatusCancelled: true, StatusCompleted: true,
}

type Service struct {
	appointments Repository
	patients     PatientDirectory
}

func NewService(appointments Repository, patients PatientDirectory) *Service {
	return &Service{appointments: appointments, patients: patients}
}

// validate checks the full field set and resolves the patient reference.
// It returns the patient id alongside any field errors; the error return
// is reserved for lookup failures that are not a missing patient.
func (s *Service) validate(ctx context.Context, in *Input) (uuid.UUID, *rest.ValidationError, error) {
	verr := rest.NewValidationError()
	var pid uuid.UUID

	if in.Patient == nil || *in.Patient == "" {
		verr.Add("patient", rest.MsgRequired)
	} else {
		parsed, err := uuid.Parse(*in.Patient)
		if err != nil {
			verr.Add("patient", rest.MsgInvalidPK(*in.Patient))
		} else if _, err := s.patients.GetByID(ctx, parsed); err != nil {
			if !errors.Is(err, patient.ErrNotFound) {
				return uuid.Nil, nil, err
			}
			verr.Add("patient", rest.MsgInvalidPK(*in.Patient))
		} else {
			pid = parsed
		}
	}
	if in.DoctorName == nil || *in.DoctorName == "" {
		verr.Add("doctor_name", rest.MsgRequired)
	}
	if in.Specialty == nil || *in.Specialty == "" {
		verr.Add("specialty", rest.MsgRequired)
	}
	if in.Date == nil || *in.Date == "" {
		verr.Add("date", rest.MsgRequired)
	} else if !rest.ValidDate(*in.Date) {
		verr.Add("date", rest.MsgInvalidDate)
	}
	if in.Time == nil || *in.Time == "" {
		verr.Add("time", rest.MsgRequired)
	} else if _, ok := rest.NormalizeTime(*in.Time); !ok {
		verr.Add("time", rest.MsgInvalidTime)
	}
	if in.Status != nil && *in.Status != "" && !validStatuses[*in.Status] {
		verr.Add("status", rest.MsgInvalidChoice(*in.Status))
	}
	return pid, verr, nil
}

func (s *Service) apply(a *Appointment, pid uuid.UUID, in *Input) {
	a.PatientID = pid
	a.DoctorName = *in.DoctorName
	a.Specialty = *in.Specialty
	a.Date = *in.Date
	a.Time, _ = rest.NormalizeTime(*in.Time)
	if in.Status != nil && *in.Status != "" {
		a.Status = *in.Status
	} else {
		a.Status = StatusBooked
	}
	if in.InsuranceVerified != nil {
		a.InsuranceVerified = *in.InsuranceVerified
	} else {
		a.InsuranceVerified = false
	}
}

func (s *Service) Create(ctx context.Context, in *Input) (*Appointment, error) {
	pid, verr, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	if !verr.Empty() {
		return nil, verr
	}

	a := &Appointment{}
	s.apply(a, pid, in)
	if err := s.appointments.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, rest.PatientNotFound()
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

// Update is a full replacement: the same field set as creation is validated
// and written over the existing row.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *Input) (*Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, rest.PatientNotFound()
	}
	if err != nil {
		return nil, err
	}
	pid, verr, err := s.validate(ctx, in)
	if err != nil {
		return nil, err
	}
	if !verr.Empty() {
		return nil, verr
	}

	s.apply(a, pid, in)
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

package hospital

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

type Service struct {
	hospitals Repository
}

func NewService(hospitals Repository) *Service {
	return &Service{hospitals: hospitals}
}

func (s *Service) Create(ctx context.Context, in *Input) (*Hospital, error) {
	verr := rest.NewValidationError()
	if in.Name == nil || *in.Name == "" {
		verr.Add("name", rest.MsgRequired)
	}
	if in.Code == nil || *in.Code == "" {
		verr.Add("code", rest.MsgRequired)
	}
	if !verr.Empty() {
		return nil, verr
	}

	if _, err := s.hospitals.GetByCode(ctx, *in.Code); err == nil {
		verr.Add("code", "hospital with this code already exists.")
		return nil, verr
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	h := &Hospital{Name: *in.Name, Code: *in.Code}
	if err := s.hospitals.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	h, err := s.hospitals.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, rest.PatientNotFound()
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) List(ctx context.Context) ([]*Hospital, error) {
	return s.hospitals.List(ctx)
}

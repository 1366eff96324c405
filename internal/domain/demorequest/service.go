package demorequest

import (
	"context"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in *Input) (*DemoRequest, error) {
	verr := rest.NewValidationError()
	if in.Name == nil || *in.Name == "" {
		verr.Add("name", rest.MsgRequired)
	}
	if in.Email == nil || *in.Email == "" {
		verr.Add("email", rest.MsgRequired)
	} else if !rest.ValidEmail(*in.Email) {
		verr.Add("email", rest.MsgInvalidEmail)
	}
	if in.HospitalName == nil || *in.HospitalName == "" {
		verr.Add("hospital_name", rest.MsgRequired)
	}
	if !verr.Empty() {
		return nil, verr
	}

	dr := &DemoRequest{
		Name:         *in.Name,
		Email:        *in.Email,
		HospitalName: *in.HospitalName,
	}
	if in.Message != nil {
		dr.Message = *in.Message
	}
	if err := s.repo.Create(ctx, dr); err != nil {
		return nil, err
	}
	return dr, nil
}

func (s *Service) List(ctx context.Context) ([]*DemoRequest, error) {
	return s.repo.List(ctx)
}

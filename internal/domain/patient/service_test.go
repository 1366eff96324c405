package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (m *mockRepo) GetByEmail(_ context.Context, email string) (*Patient, error) {
	for _, p := range m.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(_ context.Context) ([]*Patient, error) {
	result := []*Patient{}
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.patients, id)
	return nil
}

func strPtr(s string) *string { return &s }

func validInput() *RegistrationInput {
	return &RegistrationInput{
		FullName:    strPtr("John Doe"),
		Email:       strPtr("john@example.com"),
		Phone:       strPtr("555-0100"),
		DateOfBirth: strPtr("1990-04-12"),
		Address:     strPtr("1 Main St"),
	}
}

func TestRegister(t *testing.T) {
	svc := NewService(newMockRepo())

	p, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected assigned id")
	}
	if p.FullName != "John Doe" {
		t.Errorf("expected John Doe, got %s", p.FullName)
	}
	if p.DateOfBirth != "1990-04-12" {
		t.Errorf("expected 1990-04-12, got %s", p.DateOfBirth)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Register(context.Background(), &RegistrationInput{})
	var verr *rest.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"full_name", "email", "phone", "date_of_birth", "address"} {
		msgs, ok := verr.Fields[field]
		if !ok {
			t.Errorf("expected error on %s", field)
			continue
		}
		if msgs[0] != rest.MsgRequired {
			t.Errorf("expected required message on %s, got %q", field, msgs[0])
		}
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.Email = strPtr("not-an-email")
	_, err := svc.Register(context.Background(), in)
	var verr *rest.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["email"][0] != rest.MsgInvalidEmail {
		t.Errorf("expected invalid email message, got %q", verr.Fields["email"][0])
	}
}

func TestRegister_InvalidDate(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.DateOfBirth = strPtr("12/04/1990")
	_, err := svc.Register(context.Background(), in)
	var verr *rest.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, ok := verr.Fields["date_of_birth"]; !ok {
		t.Error("expected error on date_of_birth")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newMockRepo())

	if _, err := svc.Register(context.Background(), validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Register(context.Background(), validInput())
	var verr *rest.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Fields["email"][0] != "patient with this email already exists." {
		t.Errorf("unexpected duplicate message: %q", verr.Fields["email"][0])
	}
}

// failingRepo simulates an unreachable database on every lookup.
type failingRepo struct{ mockRepo }

func (f *failingRepo) GetByID(_ context.Context, _ uuid.UUID) (*Patient, error) {
	return nil, fmt.Errorf("acquire connection: connection refused")
}

func TestGet_RepoErrorIsNot404(t *testing.T) {
	svc := NewService(&failingRepo{*newMockRepo()})

	_, err := svc.Get(context.Background(), uuid.New())
	if err == nil {
		t.Fatal("expected an error")
	}
	var nf *rest.NotFoundError
	if errors.As(err, &nf) {
		t.Errorf("expected the repository error to surface, got %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	_, err := svc.Get(context.Background(), uuid.New())
	var nf *rest.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	err := svc.Delete(context.Background(), uuid.New())
	var nf *rest.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if nf.Detail != rest.DetailPatientNotFound {
		t.Errorf("unexpected detail: %q", nf.Detail)
	}
}

func TestDelete(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.Delete(context.Background(), p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), p.ID); err == nil {
		t.Error("expected patient to be gone")
	}
}

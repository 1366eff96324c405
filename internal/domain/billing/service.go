package billing

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

var validInvoiceStatuses = map[string]bool{
	InvoicePending: true, InvoicePaid: true, InvoiceCancelled: true,
}

var validClaimStatuses = map[string]bool{
	ClaimSubmitted: true, ClaimApproved: true, ClaimDenied: true,
}

type Service struct {
	invoices InvoiceRepository
	claims   ClaimRepository
	patients PatientDirectory
}

func NewService(invoices InvoiceRepository, claims ClaimRepository, patients PatientDirectory) *Service {
	return &Service{invoices: invoices, claims: claims, patients: patients}
}

// resolvePatient parses and resolves a patient reference, recording a field
// error when the reference is missing, malformed or points nowhere. The
// error return is reserved for lookup failures of any other kind.
func (s *Service) resolvePatient(ctx context.Context, ref *string, verr *rest.ValidationError) (uuid.UUID, error) {
	if ref == nil || *ref == "" {
		verr.Add("patient", rest.MsgRequired)
		return uuid.Nil, nil
	}
	pid, err := uuid.Parse(*ref)
	if err != nil {
		verr.Add("patient", rest.MsgInvalidPK(*ref))
		return uuid.Nil, nil
	}
	if _, err := s.patients.GetByID(ctx, pid); err != nil {
		if !errors.Is(err, patient.ErrNotFound) {
			return uuid.Nil, err
		}
		verr.Add("patient", rest.MsgInvalidPK(*ref))
		return uuid.Nil, nil
	}
	return pid, nil
}

// -- Invoices --

func (s *Service) CreateInvoice(ctx context.Context, in *InvoiceInput) (*Invoice, error) {
	verr := rest.NewValidationError()
	pid, err := s.resolvePatient(ctx, in.Patient, verr)
	if err != nil {
		return nil, err
	}
	var amount float64
	if in.Amount == nil {
		verr.Add("amount", rest.MsgRequired)
	} else if v, ok := rest.ParseFloat(in.Amount); !ok {
		verr.Add("amount", rest.MsgInvalidNumber)
	} else {
		amount = v
	}
	status := InvoicePending
	if in.Status != nil && *in.Status != "" {
		if !validInvoiceStatuses[*in.Status] {
			verr.Add("status", rest.MsgInvalidChoice(*in.Status))
		} else {
			status = *in.Status
		}
	}
	if !verr.Empty() {
		return nil, verr
	}

	inv := &Invoice{PatientID: pid, Amount: amount, Status: status}
	if err := s.invoices.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) ListInvoicesByPatient(ctx context.Context, patientID uuid.UUID) ([]*Invoice, error) {
	return s.invoices.ListByPatient(ctx, patientID)
}

// -- Insurance claims --

// CreateClaim validates references and records the claim. The claimed
// invoice must belong to the claiming patient.
func (s *Service) CreateClaim(ctx context.Context, in *ClaimInput) (*InsuranceClaim, error) {
	verr := rest.NewValidationError()
	pid, err := s.resolvePatient(ctx, in.Patient, verr)
	if err != nil {
		return nil, err
	}

	var inv *Invoice
	if in.Invoice == nil || *in.Invoice == "" {
		verr.Add("invoice", rest.MsgRequired)
	} else if iid, err := uuid.Parse(*in.Invoice); err != nil {
		verr.Add("invoice", rest.MsgInvalidPK(*in.Invoice))
	} else if inv, err = s.invoices.GetByID(ctx, iid); err != nil {
		if !errors.Is(err, ErrInvoiceNotFound) {
			return nil, err
		}
		inv = nil
		verr.Add("invoice", rest.MsgInvalidPK(*in.Invoice))
	}

	if in.PolicyNumber == nil || *in.PolicyNumber == "" {
		verr.Add("policy_number", rest.MsgRequired)
	}
	status := ClaimSubmitted
	if in.Status != nil && *in.Status != "" {
		if !validClaimStatuses[*in.Status] {
			verr.Add("status", rest.MsgInvalidChoice(*in.Status))
		} else {
			status = *in.Status
		}
	}

	if inv != nil && pid != uuid.Nil && inv.PatientID != pid {
		verr.Add("invoice", "Invoice does not belong to this patient.")
	}
	if !verr.Empty() {
		return nil, verr
	}

	cl := &InsuranceClaim{
		PatientID:    pid,
		InvoiceID:    inv.ID,
		PolicyNumber: *in.PolicyNumber,
		Status:       status,
	}
	if err := s.claims.Create(ctx, cl); err != nil {
		return nil, err
	}
	return cl, nil
}

func (s *Service) ListClaims(ctx context.Context) ([]*InsuranceClaim, error) {
	return s.claims.List(ctx)
}

func (s *Service) ListClaimsByPatient(ctx context.Context, patientID uuid.UUID) ([]*InsuranceClaim, error) {
	return s.claims.ListByPatient(ctx, patientID)
}

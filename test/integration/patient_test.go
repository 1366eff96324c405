package integration

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/domain/appointment"
	"github.com/sereddy-768/hms-backend/internal/domain/billing"
	"github.com/sereddy-768/hms-backend/internal/domain/emr"
	"github.com/sereddy-768/hms-backend/internal/domain/hospital"
	"github.com/sereddy-768/hms-backend/internal/domain/patient"
)

func TestPatientDeleteCascades(t *testing.T) {
	ctx := context.Background()

	hospitals := hospital.NewRepoPG(globalDB.Pool)
	patients := patient.NewRepoPG(globalDB.Pool)
	appointments := appointment.NewRepoPG(globalDB.Pool)
	invoices := billing.NewInvoiceRepoPG(globalDB.Pool)
	claims := billing.NewClaimRepoPG(globalDB.Pool)
	records := emr.NewRepoPG(globalDB.Pool)

	h := &hospital.Hospital{
		Name: "City General",
		Code: fmt.Sprintf("CG-%s", uuid.NewString()[:8]),
	}
	if err := hospitals.Create(ctx, h); err != nil {
		t.Fatalf("create hospital: %v", err)
	}

	p := &patient.Patient{
		HospitalID:  &h.ID,
		FullName:    "John Doe",
		Email:       fmt.Sprintf("%s@example.com", uuid.NewString()[:13]),
		Phone:       "555-0100",
		DateOfBirth: "1990-04-12",
		Address:     "1 Main St",
	}
	if err := patients.Create(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}

	a := &appointment.Appointment{
		PatientID:  p.ID,
		DoctorName: "Dr. Sarah Smith",
		Specialty:  "Cardiology",
		Date:       "2026-09-15",
		Time:       "14:30:00",
		Status:     appointment.StatusBooked,
	}
	if err := appointments.Create(ctx, a); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	inv := &billing.Invoice{PatientID: p.ID, Amount: 250.75, Status: billing.InvoicePending}
	if err := invoices.Create(ctx, inv); err != nil {
		t.Fatalf("create invoice: %v", err)
	}

	cl := &billing.InsuranceClaim{
		PatientID:    p.ID,
		InvoiceID:    inv.ID,
		PolicyNumber: "POL-1234",
		Status:       billing.ClaimSubmitted,
	}
	if err := claims.Create(ctx, cl); err != nil {
		t.Fatalf("create claim: %v", err)
	}

	if _, err := records.GetOrCreateByPatient(ctx, p.ID); err != nil {
		t.Fatalf("create record: %v", err)
	}

	if err := patients.Delete(ctx, p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}

	if _, err := patients.GetByID(ctx, p.ID); !errors.Is(err, patient.ErrNotFound) {
		t.Errorf("expected patient gone, got %v", err)
	}
	if _, err := appointments.GetByID(ctx, a.ID); !errors.Is(err, appointment.ErrNotFound) {
		t.Errorf("expected appointment gone, got %v", err)
	}
	if _, err := invoices.GetByID(ctx, inv.ID); !errors.Is(err, billing.ErrInvoiceNotFound) {
		t.Errorf("expected invoice gone, got %v", err)
	}

	remaining, err := claims.ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("list claims: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("expected no claims left, got %d", len(remaining))
	}

	var recordCount int
	if err := globalDB.Pool.QueryRow(ctx,
		`SELECT count(*) FROM electronic_medical_record WHERE patient_id = $1`, p.ID).
		Scan(&recordCount); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if recordCount != 0 {
		t.Errorf("expected no medical record left, got %d", recordCount)
	}

	// The hospital survives its patients.
	got, err := hospitals.GetByID(ctx, h.ID)
	if err != nil {
		t.Fatalf("get hospital: %v", err)
	}
	if got.Code != h.Code {
		t.Errorf("expected hospital %s intact, got %s", h.Code, got.Code)
	}
}

func TestPatientUniqueEmail(t *testing.T) {
	ctx := context.Background()
	patients := patient.NewRepoPG(globalDB.Pool)

	p := createTestPatient(t, ctx, "Jane Roe")

	dup := &patient.Patient{
		FullName:    "Jane Roe",
		Email:       p.Email,
		Phone:       "555-0101",
		DateOfBirth: "1985-02-20",
		Address:     "2 Oak Ave",
	}
	if err := patients.Create(ctx, dup); err == nil {
		t.Error("expected unique violation on duplicate email")
	}
}

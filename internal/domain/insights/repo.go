package insights

import (
	"context"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/domain/appointment"
)

// StatsRepository exposes the aggregate queries the dashboards are built on.
type StatsRepository interface {
	PatientAppointmentCount(ctx context.Context, patientID uuid.UUID) (int, error)
	HasEMR(ctx context.Context, patientID uuid.UUID) (bool, error)
	// NextBookedAppointment returns the earliest BOOKED appointment for the
	// patient, or (nil, nil) when the patient has no appointments at all.
	// hasAny reports whether any appointment exists regardless of status.
	NextBookedAppointment(ctx context.Context, patientID uuid.UUID) (next *appointment.Appointment, hasAny bool, err error)
	PendingInvoiceCount(ctx context.Context, patientID uuid.UUID) (int, error)
	ClaimCount(ctx context.Context, patientID uuid.UUID) (int, error)

	TotalPatients(ctx context.Context) (int, error)
	TotalAppointments(ctx context.Context) (int, error)
	DistinctDoctors(ctx context.Context) (int, error)
	DistinctSpecialties(ctx context.Context) (int, error)
	InvoiceTotal(ctx context.Context) (float64, error)
}

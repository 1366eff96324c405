package insights

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/domain/patient"
	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

// Demo placeholders surfaced on the patient dashboard.
const (
	placeholderPrescriptions = 3
	placeholderLabResults    = 5

	noUpcomingAppointments = "No upcoming appointments"
)

var placeholderNotifications = []string{
	"New Lab Report ready.",
	"Your next appointment reminder (demo data).",
}

// Demo roster shown on the staff overview.
var demoDoctorStatus = []DoctorStatus{
	{Name: "Dr. Sarah Smith", Department: "Cardiology", Status: "Available"},
	{Name: "Dr. Priya Patel", Department: "Emergency", Status: "On Duty"},
	{Name: "Dr. James Johnson", Department: "Pediatrics", Status: "3 Appointments"},
}

// Demo figures on the analytics payload pending real telemetry.
const (
	placeholderOccupancy       = 75
	placeholderAvgResponseTime = 10
	placeholderSatisfaction    = 4.5
	placeholderStaffEfficiency = 88
)

type PatientDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
}

type Service struct {
	stats    StatsRepository
	patients PatientDirectory
}

func NewService(stats StatsRepository, patients PatientDirectory) *Service {
	return &Service{stats: stats, patients: patients}
}

// Dashboard assembles the per-patient summary.
func (s *Service) Dashboard(ctx context.Context, patientID uuid.UUID) (*DashboardSummary, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if errors.Is(err, patient.ErrNotFound) {
		return nil, rest.PatientNotFound()
	}
	if err != nil {
		return nil, err
	}

	apptCount, err := s.stats.PatientAppointmentCount(ctx, patientID)
	if err != nil {
		return nil, err
	}
	hasEMR, err := s.stats.HasEMR(ctx, patientID)
	if err != nil {
		return nil, err
	}
	records := 0
	if hasEMR {
		records = 1
	}

	next, hasAny, err := s.stats.NextBookedAppointment(ctx, patientID)
	if err != nil {
		return nil, err
	}
	nextText := noUpcomingAppointments
	if hasAny {
		if next != nil {
			nextText = next.Display(p.FullName)
		} else {
			// Appointments exist but none is BOOKED.
			nextText = "None"
		}
	}

	pending, err := s.stats.PendingInvoiceCount(ctx, patientID)
	if err != nil {
		return nil, err
	}
	claims, err := s.stats.ClaimCount(ctx, patientID)
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		PatientName:        p.FullName,
		AppointmentsCount:  apptCount,
		RecordsCount:       records,
		PrescriptionsCount: placeholderPrescriptions,
		LabResultsCount:    placeholderLabResults,
		NextAppointment:    nextText,
		Notifications:      placeholderNotifications,
		BillingPending:     pending,
		ClaimsSubmitted:    claims,
	}, nil
}

// StaffOverview assembles the staff dashboard. The appointment figure counts
// all appointments on record, not just today's.
func (s *Service) StaffOverview(ctx context.Context) (*StaffOverview, error) {
	patients, err := s.stats.TotalPatients(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.stats.TotalAppointments(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.stats.DistinctDoctors(ctx)
	if err != nil {
		return nil, err
	}
	departments, err := s.stats.DistinctSpecialties(ctx)
	if err != nil {
		return nil, err
	}

	return &StaffOverview{
		TotalPatients:      patients,
		TodaysAppointments: appts,
		Doctors:            doctors,
		Departments:        departments,
		DoctorStatus:       demoDoctorStatus,
	}, nil
}

// Analytics assembles hospital-level figures. Visits and revenue are live;
// the rest are placeholders.
func (s *Service) Analytics(ctx context.Context) (*Analytics, error) {
	visits, err := s.stats.TotalAppointments(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.stats.InvoiceTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &Analytics{
		TotalVisits:     visits,
		Revenue:         revenue,
		Occupancy:       placeholderOccupancy,
		AvgResponseTime: placeholderAvgResponseTime,
		Satisfaction:    placeholderSatisfaction,
		StaffEfficiency: placeholderStaffEfficiency,
	}, nil
}

package insights

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sereddy-768/hms-backend/internal/domain/appointment"
)

type statsRepoPG struct{ pool *pgxpool.Pool }

func NewStatsRepoPG(pool *pgxpool.Pool) StatsRepository { return &statsRepoPG{pool: pool} }

func (r *statsRepoPG) count(ctx context.Context, sql string, args ...interface{}) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, sql, args...).Scan(&n)
	return n, err
}

func (r *statsRepoPG) PatientAppointmentCount(ctx context.Context, patientID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM appointment WHERE patient_id = $1`, patientID)
}

func (r *statsRepoPG) HasEMR(ctx context.Context, patientID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM electronic_medical_record WHERE patient_id = $1)`, patientID).
		Scan(&exists)
	return exists, err
}

func (r *statsRepoPG) NextBookedAppointment(ctx context.Context, patientID uuid.UUID) (*appointment.Appointment, bool, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM appointment WHERE patient_id = $1`, patientID)
	if err != nil {
		return nil, false, err
	}
	if n == 0 {
		return nil, false, nil
	}

	var a appointment.Appointment
	err = r.pool.QueryRow(ctx, `
		SELECT id, patient_id, doctor_name, specialty,
		       to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS'),
		       status, insurance_verified, created_at
		FROM appointment
		WHERE patient_id = $1 AND status = $2
		ORDER BY date, time
		LIMIT 1`,
		patientID, appointment.StatusBooked).
		Scan(&a.ID, &a.PatientID, &a.DoctorName, &a.Specialty,
			&a.Date, &a.Time, &a.Status, &a.InsuranceVerified, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, true, nil
	}
	if err != nil {
		return nil, true, err
	}
	return &a, true, nil
}

func (r *statsRepoPG) PendingInvoiceCount(ctx context.Context, patientID uuid.UUID) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(*) FROM invoice WHERE patient_id = $1 AND status = 'PENDING'`, patientID)
}

func (r *statsRepoPG) ClaimCount(ctx context.Context, patientID uuid.UUID) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM insurance_claim WHERE patient_id = $1`, patientID)
}

func (r *statsRepoPG) TotalPatients(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM patient`)
}

func (r *statsRepoPG) TotalAppointments(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM appointment`)
}

func (r *statsRepoPG) DistinctDoctors(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT doctor_name) FROM appointment`)
}

func (r *statsRepoPG) DistinctSpecialties(ctx context.Context) (int, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT specialty) FROM appointment`)
}

func (r *statsRepoPG) InvoiceTotal(ctx context.Context) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::float8 FROM invoice`).Scan(&total)
	return total, err
}

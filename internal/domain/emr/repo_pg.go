package emr

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const recordCols = `id, patient_id, active_conditions, current_medications, allergies,
	genetic_history, to_char(last_checkup_date, 'YYYY-MM-DD'), last_glucose, last_cholesterol`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.PatientID, &rec.ActiveConditions, &rec.CurrentMedications,
		&rec.Allergies, &rec.GeneticHistory, &rec.LastCheckupDate, &rec.LastGlucose, &rec.LastCholesterol)
	return &rec, err
}

func (r *repoPG) GetOrCreateByPatient(ctx context.Context, patientID uuid.UUID) (*Record, error) {
	// The losing side of a concurrent first read hits the conflict and
	// falls through to the select.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO electronic_medical_record (id, patient_id)
		VALUES ($1, $2)
		ON CONFLICT (patient_id) DO NOTHING`,
		uuid.New(), patientID)
	if err != nil {
		return nil, err
	}
	return scanRecord(r.pool.QueryRow(ctx,
		`SELECT `+recordCols+` FROM electronic_medical_record WHERE patient_id = $1`, patientID))
}

func (r *repoPG) Update(ctx context.Context, rec *Record) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE electronic_medical_record
		SET active_conditions=$2, current_medications=$3, allergies=$4, genetic_history=$5,
			last_checkup_date=$6::date, last_glucose=$7, last_cholesterol=$8,
			updated_at=now()
		WHERE id = $1`,
		rec.ID, rec.ActiveConditions, rec.CurrentMedications, rec.Allergies, rec.GeneticHistory,
		rec.LastCheckupDate, rec.LastGlucose, rec.LastCholesterol)
	return err
}

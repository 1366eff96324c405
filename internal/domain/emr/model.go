package emr

import (
	"github.com/google/uuid"

	"github.com/sereddy-768/hms-backend/internal/platform/rest"
)

// Record maps to the electronic_medical_record table. Exactly one record
// exists per patient; it is created empty on first access.
type Record struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	PatientID          uuid.UUID `db:"patient_id" json:"patient"`
	ActiveConditions   string    `db:"active_conditions" json:"active_conditions"`
	CurrentMedications string    `db:"current_medications" json:"current_medications"`
	Allergies          string    `db:"allergies" json:"allergies"`
	GeneticHistory     string    `db:"genetic_history" json:"genetic_history"`
	LastCheckupDate    *string   `db:"last_checkup_date" json:"last_checkup_date,omitempty"`
	LastGlucose        *float64  `db:"last_glucose" json:"last_glucose,omitempty"`
	LastCholesterol    *float64  `db:"last_cholesterol" json:"last_cholesterol,omitempty"`
}

// ApplyFields validates a client-supplied field mapping against the record's
// field types and, only when every field checks out, applies it as a
// full-or-partial replacement. On failure the record is left untouched and
// the per-field errors are returned.
func (r *Record) ApplyFields(fields map[string]interface{}) *rest.ValidationError {
	verr := rest.NewValidationError()

	staged := *r

	for _, f := range [...]struct {
		name   string
		target *string
	}{
		{"active_conditions", &staged.ActiveConditions},
		{"current_medications", &staged.CurrentMedications},
		{"allergies", &staged.Allergies},
		{"genetic_history", &staged.GeneticHistory},
	} {
		v, ok := fields[f.name]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			verr.Add(f.name, rest.MsgInvalidString)
			continue
		}
		*f.target = s
	}

	if v, ok := fields["last_checkup_date"]; ok {
		if v == nil {
			staged.LastCheckupDate = nil
		} else if s, ok := v.(string); ok && rest.ValidDate(s) {
			staged.LastCheckupDate = &s
		} else {
			verr.Add("last_checkup_date", rest.MsgInvalidDate)
		}
	}
	for _, f := range [...]struct {
		name   string
		target **float64
	}{
		{"last_glucose", &staged.LastGlucose},
		{"last_cholesterol", &staged.LastCholesterol},
	} {
		v, ok := fields[f.name]
		if !ok {
			continue
		}
		if v == nil {
			*f.target = nil
			continue
		}
		n, ok := rest.ParseFloat(v)
		if !ok {
			verr.Add(f.name, rest.MsgInvalidNumber)
			continue
		}
		*f.target = &n
	}

	if !verr.Empty() {
		return verr
	}
	*r = staged
	return nil
}

package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	HospitalID  *uuid.UUID `db:"hospital_id" json:"hospital"`
	FullName    string     `db:"full_name" json:"full_name"`
	Email       string     `db:"email" json:"email"`
	Phone       string     `db:"phone" json:"phone"`
	DateOfBirth string     `db:"date_of_birth" json:"date_of_birth"`
	Address     string     `db:"address" json:"address"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// RegistrationInput is the allow-listed field set a client may submit when
// registering. Hospital assignment and id are never client-settable.
type RegistrationInput struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"`
	Address     *string `json:"address"`
}

package demorequest

import (
	"time"

	"github.com/google/uuid"
)

// DemoRequest is a sales inquiry captured from the public site.
type DemoRequest struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	HospitalName string    `db:"hospital_name" json:"hospital_name"`
	Message      string    `db:"message" json:"message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type Input struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	HospitalName *string `json:"hospital_name"`
	Message      *string `json:"message"`
}

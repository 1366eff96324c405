package appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusBooked    = "BOOKED"
	StatusCancelled = "CANCELLED"
	StatusCompleted = "COMPLETED"
)

// Appointment maps to the appointment table. Date is a YYYY-MM-DD calendar
// date and Time an hh:mm:ss clock time; ordering by (Date, Time) is
// chronological.
type Appointment struct {
	ID                uuid.UUID `db:"id" json:"id"`
	PatientID         uuid.UUID `db:"patient_id" json:"patient"`
	DoctorName        string    `db:"doctor_name" json:"doctor_name"`
	Specialty         string    `db:"specialty" json:"specialty"`
	Date              string    `db:"date" json:"date"`
	Time              string    `db:"time" json:"time"`
	Status            string    `db:"status" json:"status"`
	InsuranceVerified bool      `db:"insurance_verified" json:"insurance_verified"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Display renders the appointment the way the dashboard presents it.
func (a *Appointment) Display(patientName string) string {
	return fmt.Sprintf("%s - %s @ %s %s", patientName, a.DoctorName, a.Date, a.Time)
}

type Input struct {
	Patient           *string `json:"patient"`
	DoctorName        *string `json:"doctor_name"`
	Specialty         *string `json:"specialty"`
	Date              *string `json:"date"`
	Time              *string `json:"time"`
	Status            *string `json:"status"`
	InsuranceVerified *bool   `json:"insurance_verified"`
}

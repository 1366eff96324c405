package insights

// DashboardSummary is the patient-facing dashboard payload. Prescription,
// lab-result and notification figures are demo placeholders until those
// subsystems land.
type DashboardSummary struct {
	PatientName        string   `json:"patient_name"`
	AppointmentsCount  int      `json:"appointments_count"`
	RecordsCount       int      `json:"records_count"`
	PrescriptionsCount int      `json:"prescriptions_count"`
	LabResultsCount    int      `json:"lab_results_count"`
	NextAppointment    string   `json:"next_appointment"`
	Notifications      []string `json:"notifications"`
	BillingPending     int      `json:"billing_pending"`
	ClaimsSubmitted    int      `json:"claims_submitted"`
}

// DoctorStatus is one row of the staff roster. The wire key for the
// department is "dept"; clients match on it.
type DoctorStatus struct {
	Name       string `json:"name"`
	Department string `json:"dept"`
	Status     string `json:"status"`
}

// StaffOverview is the staff dashboard payload.
type StaffOverview struct {
	TotalPatients      int            `json:"total_patients"`
	TodaysAppointments int            `json:"todays_appointments"`
	Doctors            int            `json:"doctors"`
	Departments        int            `json:"departments"`
	DoctorStatus       []DoctorStatus `json:"doctor_status"`
}

// Analytics is the hospital-level analytics payload. Several figures are
// demo placeholders pending real telemetry.
type Analytics struct {
	TotalVisits     int     `json:"total_visits"`
	Revenue         float64 `json:"revenue"`
	Occupancy       int     `json:"occupancy"`
	AvgResponseTime int     `json:"avg_response_time"`
	Satisfaction    float64 `json:"satisfaction"`
	StaffEfficiency int     `json:"staff_efficiency"`
}

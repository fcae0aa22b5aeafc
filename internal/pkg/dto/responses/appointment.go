package responses

type Appointment struct {
	ID              string `json:"id"`
	DoctorID        string `json:"doctorId"`
	PatientID       string `json:"patientId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	Source          string `json:"source"`
	Reason          string `json:"reason,omitempty"`
}

package responses

import (
	"time"

	"clinicstack-service/internal/app/models"
)

type Prescription struct {
	ID            string                    `json:"id"`
	PatientID     string                    `json:"patientId"`
	DoctorID      string                    `json:"doctorId"`
	AppointmentID string                    `json:"appointmentId,omitempty"`
	Items         []models.PrescriptionItem `json:"items"`
	Notes         string                    `json:"notes,omitempty"`
	IsDispensed   bool                      `json:"isDispensed"`
	IssuedAt      time.Time                 `json:"issuedAt"`
}

package models

import "time"

type PrescriptionItem struct {
	MedicineID   string `json:"medicineId,omitempty" bson:"medicineId,omitempty"`
	Name         string `json:"name" bson:"name"`
	Dosage       string `json:"dosage" bson:"dosage"`
	Frequency    string `json:"frequency" bson:"frequency"`
	DurationDays int    `json:"durationDays" bson:"durationDays"`
	Quantity     int    `json:"quantity" bson:"quantity"`
	Instructions string `json:"instructions,omitempty" bson:"instructions,omitempty"`
}

type Prescription struct {
	ID            string             `bson:"_id,omitempty"`
	TenantID      string             `bson:"tenantId"`
	PatientID     string             `bson:"patientId"`
	DoctorID      string             `bson:"doctorId"`
	AppointmentID string             `bson:"appointmentId,omitempty"`
	Items         []PrescriptionItem `bson:"items"`
	Notes         string             `bson:"notes,omitempty"`
	IsDispensed   bool               `bson:"isDispensed"`
	IssuedAt      time.Time          `bson:"issuedAt"`
	TimeModel     `bson:",inline"`
}

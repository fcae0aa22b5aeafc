package models

type Appointment struct {
	ID              string `bson:"_id,omitempty"`
	TenantID        string `bson:"tenantId"`
	DoctorID        string `bson:"doctorId"`
	PatientID       string `bson:"patientId"`
	Date            string `bson:"date"`
	StartTime       string `bson:"startTime"`
	EndTime         string `bson:"endTime"`
	DurationMinutes int    `bson:"durationMinutes"`
	Status          string `bson:"status"`
	Source          string `bson:"source"`
	Reason          string `bson:"reason,omitempty"`
	TimeModel       `bson:",inline"`
}

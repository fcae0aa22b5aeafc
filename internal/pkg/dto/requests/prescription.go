package requests

type PrescriptionItem struct {
	MedicineID   string `json:"medicineId"`
	Name         string `json:"name" validate:"required,max=200"`
	Dosage       string `json:"dosage" validate:"required,max=100"`
	Frequency    string `json:"frequency" validate:"required,max=100"`
	DurationDays int    `json:"durationDays" validate:"gte=0,lte=365"`
	Quantity     int    `json:"quantity" validate:"required,gte=1"`
	Instructions string `json:"instructions" validate:"omitempty,max=500"`
}

type CreatePrescription struct {
	PatientID     string             `json:"patientId" validate:"required"`
	AppointmentID string             `json:"appointmentId"`
	Items         []PrescriptionItem `json:"items" validate:"required,min=1,dive"`
	Notes         string             `json:"notes" validate:"omitempty,max=2000"`
}

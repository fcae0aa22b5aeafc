package requests

type BookAppointment struct {
	DoctorID  string `json:"doctorId" validate:"required"`
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,date_iso"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed in-progress completed cancelled no-show"`
}

type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Date      string
	Status    string
}

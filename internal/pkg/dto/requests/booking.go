package requests

// BookPublicAppointment is the unauthenticated booking payload. The patient is
// matched by phone number within the tenant, or created on the fly.
type BookPublicAppointment struct {
	DoctorID    string `json:"doctorId" validate:"required"`
	Date        string `json:"date" validate:"required,date_iso"`
	StartTime   string `json:"startTime" validate:"required,clock_time"`
	FullName    string `json:"fullName" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Reason      string `json:"reason" validate:"omitempty,max=500"`
}

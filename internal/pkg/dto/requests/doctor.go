package requests

type CreateDoctor struct {
	FullName        string  `json:"fullName" validate:"required,min=2,max=100"`
	Specialization  string  `json:"specialization" validate:"required,max=100"`
	Qualification   string  `json:"qualification" validate:"omitempty,max=255"`
	Email           string  `json:"email" validate:"omitempty,email"`
	PhoneNumber     string  `json:"phoneNumber" validate:"omitempty,phone"`
	ConsultationFee float64 `json:"consultationFee" validate:"gte=0"`
}

type UpdateDoctor struct {
	FullName        string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	Specialization  string   `json:"specialization" validate:"omitempty,max=100"`
	Qualification   string   `json:"qualification" validate:"omitempty,max=255"`
	Email           string   `json:"email" validate:"omitempty,email"`
	PhoneNumber     string   `json:"phoneNumber" validate:"omitempty,phone"`
	ConsultationFee *float64 `json:"consultationFee" validate:"omitempty,gte=0"`
	IsActive        *bool    `json:"isActive"`
}

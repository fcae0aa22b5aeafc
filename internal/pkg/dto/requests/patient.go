package requests

type CreatePatient struct {
	FullName       string   `json:"fullName" validate:"required,min=2,max=100"`
	Email          string   `json:"email" validate:"omitempty,email"`
	PhoneNumber    string   `json:"phoneNumber" validate:"required,phone"`
	DateOfBirth    string   `json:"dateOfBirth" validate:"omitempty,date_iso"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup     string   `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address        string   `json:"address" validate:"omitempty,max=255"`
	Allergies      []string `json:"allergies" validate:"omitempty,dive,max=100"`
	MedicalHistory string   `json:"medicalHistory" validate:"omitempty,max=5000"`
}

type UpdatePatient struct {
	FullName       string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	Email          string   `json:"email" validate:"omitempty,email"`
	PhoneNumber    string   `json:"phoneNumber" validate:"omitempty,phone"`
	DateOfBirth    string   `json:"dateOfBirth" validate:"omitempty,date_iso"`
	Gender         string   `json:"gender" validate:"omitempty,oneof=male female other"`
	BloodGroup     string   `json:"bloodGroup" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Address        string   `json:"address" validate:"omitempty,max=255"`
	Allergies      []string `json:"allergies" validate:"omitempty,dive,max=100"`
	MedicalHistory string   `json:"medicalHistory" validate:"omitempty,max=5000"`
}

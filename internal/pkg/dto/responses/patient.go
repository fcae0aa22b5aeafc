package responses

type Patient struct {
	ID             string   `json:"id"`
	FullName       string   `json:"fullName"`
	Email          string   `json:"email,omitempty"`
	PhoneNumber    string   `json:"phoneNumber"`
	DateOfBirth    string   `json:"dateOfBirth,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	BloodGroup     string   `json:"bloodGroup,omitempty"`
	Address        string   `json:"address,omitempty"`
	Allergies      []string `json:"allergies,omitempty"`
	MedicalHistory string   `json:"medicalHistory,omitempty"`
}

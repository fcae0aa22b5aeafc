package responses

type Doctor struct {
	ID              string  `json:"id"`
	FullName        string  `json:"fullName"`
	Specialization  string  `json:"specialization"`
	Qualification   string  `json:"qualification,omitempty"`
	Email           string  `json:"email,omitempty"`
	PhoneNumber     string  `json:"phoneNumber,omitempty"`
	ConsultationFee float64 `json:"consultationFee"`
	IsActive        bool    `json:"isActive"`
}

// PublicDoctor is the reduced shape exposed on the public booking page.
type PublicDoctor struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization"`
}

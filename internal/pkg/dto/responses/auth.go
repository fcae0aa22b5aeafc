package responses

type Login struct {
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
}

type Profile struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	TenantID string `json:"tenantId"`
	DoctorID string `json:"doctorId,omitempty"`
}

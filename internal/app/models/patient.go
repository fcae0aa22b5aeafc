package models

type Patient struct {
	ID             string   `bson:"_id,omitempty"`
	TenantID       string   `bson:"tenantId"`
	FullName       string   `bson:"fullName"`
	Email          string   `bson:"email,omitempty"`
	PhoneNumber    string   `bson:"phoneNumber"`
	DateOfBirth    string   `bson:"dateOfBirth,omitempty"`
	Gender         string   `bson:"gender,omitempty"`
	BloodGroup     string   `bson:"bloodGroup,omitempty"`
	Address        string   `bson:"address,omitempty"`
	Allergies      []string `bson:"allergies,omitempty"`
	MedicalHistory string   `bson:"medicalHistory,omitempty"`
	TimeModel      `bson:",inline"`
}

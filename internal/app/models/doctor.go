package models

type Doctor struct {
	ID              string  `bson:"_id,omitempty"`
	TenantID        string  `bson:"tenantId"`
	FullName        string  `bson:"fullName"`
	Specialization  string  `bson:"specialization"`
	Qualification   string  `bson:"qualification,omitempty"`
	Email           string  `bson:"email,omitempty"`
	PhoneNumber     string  `bson:"phoneNumber,omitempty"`
	ConsultationFee float64 `bson:"consultationFee"`
	IsActive        bool    `bson:"isActive"`
	TimeModel       `bson:",inline"`
}

package models

type User struct {
	ID        string `bson:"_id,omitempty"`
	TenantID  string `bson:"tenantId"`
	Email     string `bson:"email"`
	Password  string `bson:"password"`
	FullName  string `bson:"fullName"`
	Role      string `bson:"role"`
	DoctorID  string `bson:"doctorId,omitempty"`
	IsActive  bool   `bson:"isActive"`
	TimeModel `bson:",inline"`
}

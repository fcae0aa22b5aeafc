package models

type Tenant struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Name        string `json:"name" bson:"name"`
	BookingSlug string `json:"bookingSlug" bson:"bookingSlug"`
	Email       string `json:"email" bson:"email"`
	PhoneNumber string `json:"phoneNumber" bson:"phoneNumber"`
	Address     string `json:"address" bson:"address"`
	Country     string `json:"country" bson:"country"`
	Currency    string `json:"currency" bson:"currency"`
	IsActive    bool   `json:"isActive" bson:"isActive"`
	TimeModel   `bson:",inline"`
}

package models

type TaxConfig struct {
	ID          string  `bson:"_id,omitempty"`
	TenantID    string  `bson:"tenantId"`
	Name        string  `bson:"name"`
	RatePercent float64 `bson:"ratePercent"`
	IsEnabled   bool    `bson:"isEnabled"`
	TimeModel   `bson:",inline"`
}

package requests

type CreateTaxConfig struct {
	Name        string  `json:"name" validate:"required,max=50"`
	RatePercent float64 `json:"ratePercent" validate:"gte=0,lte=100"`
	IsEnabled   bool    `json:"isEnabled"`
}

type UpdateTaxConfig struct {
	Name        string   `json:"name" validate:"omitempty,max=50"`
	RatePercent *float64 `json:"ratePercent" validate:"omitempty,gte=0,lte=100"`
	IsEnabled   *bool    `json:"isEnabled"`
}

package responses

type TaxConfig struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RatePercent float64 `json:"ratePercent"`
	IsEnabled   bool    `json:"isEnabled"`
}

package responses

type Tenant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BookingSlug string `json:"bookingSlug"`
	Country     string `json:"country"`
	Currency    string `json:"currency"`
}

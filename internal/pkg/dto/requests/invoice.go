package requests

type InvoiceLineItem struct {
	Description string  `json:"description" validate:"required,max=255"`
	Quantity    int     `json:"quantity" validate:"required,gte=1"`
	UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
}

type CreateInvoice struct {
	PatientID string            `json:"patientId" validate:"required"`
	Items     []InvoiceLineItem `json:"items" validate:"required,min=1,dive"`
	Discount  float64           `json:"discount" validate:"gte=0"`
}

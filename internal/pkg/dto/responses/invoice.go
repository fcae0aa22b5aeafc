package responses

import (
	"time"

	"clinicstack-service/internal/app/models"
)

type Invoice struct {
	ID            string                   `json:"id"`
	InvoiceNumber string                   `json:"invoiceNumber"`
	PatientID     string                   `json:"patientId"`
	Items         []models.InvoiceLineItem `json:"items"`
	Subtotal      float64                  `json:"subtotal"`
	Discount      float64                  `json:"discount"`
	TaxLines      []models.InvoiceTaxLine  `json:"taxLines,omitempty"`
	GrandTotal    float64                  `json:"grandTotal"`
	Status        string                   `json:"status"`
	IssuedAt      *time.Time               `json:"issuedAt,omitempty"`
	PaidAt        *time.Time               `json:"paidAt,omitempty"`
}

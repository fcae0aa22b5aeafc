package models

import "time"

type InvoiceLineItem struct {
	Description string  `json:"description" bson:"description"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	UnitPrice   float64 `json:"unitPrice" bson:"unitPrice"`
	Amount      float64 `json:"amount" bson:"amount"`
}

type InvoiceTaxLine struct {
	Name   string  `json:"name" bson:"name"`
	Rate   float64 `json:"rate" bson:"rate"`
	Amount float64 `json:"amount" bson:"amount"`
}

type Invoice struct {
	ID            string            `bson:"_id,omitempty"`
	TenantID      string            `bson:"tenantId"`
	InvoiceNumber string            `bson:"invoiceNumber"`
	PatientID     string            `bson:"patientId"`
	Items         []InvoiceLineItem `bson:"items"`
	Subtotal      float64           `bson:"subtotal"`
	Discount      float64           `bson:"discount"`
	TaxLines      []InvoiceTaxLine  `bson:"taxLines,omitempty"`
	GrandTotal    float64           `bson:"grandTotal"`
	Status        string            `bson:"status"`
	IssuedAt      *time.Time        `bson:"issuedAt,omitempty"`
	PaidAt        *time.Time        `bson:"paidAt,omitempty"`
	TimeModel     `bson:",inline"`
}

package invoices

import (
	"math"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
)

// RoundMoney rounds half-up to two decimal places. math.Round rounds halves
// away from zero, which matches half-up for the non-negative amounts handled
// here.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}

// BuildLineItems computes the per-line amount as quantity times unit price,
// rounded to two decimals.
func BuildLineItems(items []requests.InvoiceLineItem) []models.InvoiceLineItem {
	lineItems := make([]models.InvoiceLineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, models.InvoiceLineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      RoundMoney(float64(item.Quantity) * item.UnitPrice),
		})
	}
	return lineItems
}

// ComputeTotals derives subtotal, tax lines and the grand total. Each enabled
// tax applies to the discounted subtotal independently; taxes never compound.
func ComputeTotals(lineItems []models.InvoiceLineItem, discount float64, taxConfigs []models.TaxConfig) (subtotal float64, taxLines []models.InvoiceTaxLine, grandTotal float64) {
	for _, item := range lineItems {
		subtotal += item.Amount
	}
	subtotal = RoundMoney(subtotal)

	taxable := subtotal - discount
	if taxable < 0 {
		taxable = 0
	}

	taxTotal := 0.0
	for _, taxConfig := range taxConfigs {
		if !taxConfig.IsEnabled {
			continue
		}
		amount := RoundMoney(taxable * taxConfig.RatePercent / 100)
		taxLines = append(taxLines, models.InvoiceTaxLine{
			Name:   taxConfig.Name,
			Rate:   taxConfig.RatePercent,
			Amount: amount,
		})
		taxTotal += amount
	}

	grandTotal = RoundMoney(subtotal - discount + taxTotal)
	return subtotal, taxLines, grandTotal
}

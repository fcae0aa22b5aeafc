package invoices

import (
	"testing"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	t.Run("rounds half up at two decimals", func(t *testing.T) {
		assert.Equal(t, 10.13, RoundMoney(10.125))
		assert.Equal(t, 10.12, RoundMoney(10.124))
		assert.Equal(t, 0.01, RoundMoney(0.005))
	})

	t.Run("leaves exact values untouched", func(t *testing.T) {
		assert.Equal(t, 100.0, RoundMoney(100.0))
		assert.Equal(t, 99.99, RoundMoney(99.99))
	})
}

func TestBuildLineItems(t *testing.T) {
	t.Run("amount is quantity times unit price", func(t *testing.T) {
		items := BuildLineItems([]requests.InvoiceLineItem{
			{Description: "Consultation", Quantity: 1, UnitPrice: 500},
			{Description: "Paracetamol 500mg", Quantity: 3, UnitPrice: 12.5},
		})

		require.Len(t, items, 2)
		assert.Equal(t, 500.0, items[0].Amount)
		assert.Equal(t, 37.5, items[1].Amount)
	})
}

func TestComputeTotals(t *testing.T) {
	lineItems := []models.InvoiceLineItem{
		{Description: "Consultation", Quantity: 1, UnitPrice: 500, Amount: 500},
		{Description: "Dressing", Quantity: 2, UnitPrice: 75, Amount: 150},
	}

	t.Run("no taxes no discount", func(t *testing.T) {
		subtotal, taxLines, grandTotal := ComputeTotals(lineItems, 0, nil)

		assert.Equal(t, 650.0, subtotal)
		assert.Empty(t, taxLines)
		assert.Equal(t, 650.0, grandTotal)
	})

	t.Run("single tax applies to discounted subtotal", func(t *testing.T) {
		taxConfigs := []models.TaxConfig{
			{Name: "GST", RatePercent: 18, IsEnabled: true},
		}

		subtotal, taxLines, grandTotal := ComputeTotals(lineItems, 50, taxConfigs)

		assert.Equal(t, 650.0, subtotal)
		require.Len(t, taxLines, 1)
		assert.Equal(t, 108.0, taxLines[0].Amount)
		assert.Equal(t, 708.0, grandTotal)
	})

	t.Run("each tax rounds independently without compounding", func(t *testing.T) {
		items := []models.InvoiceLineItem{
			{Description: "Consultation", Quantity: 1, UnitPrice: 333.33, Amount: 333.33},
		}
		taxConfigs := []models.TaxConfig{
			{Name: "CGST", RatePercent: 9, IsEnabled: true},
			{Name: "SGST", RatePercent: 9, IsEnabled: true},
		}

		subtotal, taxLines, grandTotal := ComputeTotals(items, 0, taxConfigs)

		assert.Equal(t, 333.33, subtotal)
		require.Len(t, taxLines, 2)
		// 333.33 * 9% = 29.9997, rounded half-up to 30.00 per line.
		assert.Equal(t, 30.0, taxLines[0].Amount)
		assert.Equal(t, 30.0, taxLines[1].Amount)
		assert.Equal(t, 393.33, grandTotal)
	})

	t.Run("disabled taxes are skipped", func(t *testing.T) {
		taxConfigs := []models.TaxConfig{
			{Name: "GST", RatePercent: 18, IsEnabled: false},
		}

		_, taxLines, grandTotal := ComputeTotals(lineItems, 0, taxConfigs)

		assert.Empty(t, taxLines)
		assert.Equal(t, 650.0, grandTotal)
	})

	t.Run("discount larger than subtotal leaves nothing taxable", func(t *testing.T) {
		taxConfigs := []models.TaxConfig{
			{Name: "GST", RatePercent: 18, IsEnabled: true},
		}

		_, taxLines, _ := ComputeTotals(lineItems, 700, taxConfigs)

		require.Len(t, taxLines, 1)
		assert.Equal(t, 0.0, taxLines[0].Amount)
	})
}

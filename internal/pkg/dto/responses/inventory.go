package responses

type InventoryItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	SKU             string  `json:"sku,omitempty"`
	Unit            string  `json:"unit"`
	BatchNumber     string  `json:"batchNumber,omitempty"`
	ExpiryDate      string  `json:"expiryDate,omitempty"`
	QuantityInStock int     `json:"quantityInStock"`
	ReorderLevel    int     `json:"reorderLevel"`
	UnitPrice       float64 `json:"unitPrice"`
	IsLowStock      bool    `json:"isLowStock"`
}

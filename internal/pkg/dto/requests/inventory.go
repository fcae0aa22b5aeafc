package requests

type CreateInventoryItem struct {
	Name            string  `json:"name" validate:"required,max=200"`
	SKU             string  `json:"sku" validate:"omitempty,max=50"`
	Unit            string  `json:"unit" validate:"required,max=20"`
	BatchNumber     string  `json:"batchNumber" validate:"omitempty,max=50"`
	ExpiryDate      string  `json:"expiryDate" validate:"omitempty,date_iso"`
	QuantityInStock int     `json:"quantityInStock" validate:"gte=0"`
	ReorderLevel    int     `json:"reorderLevel" validate:"gte=0"`
	UnitPrice       float64 `json:"unitPrice" validate:"gte=0"`
}

type UpdateInventoryItem struct {
	Name         string   `json:"name" validate:"omitempty,max=200"`
	Unit         string   `json:"unit" validate:"omitempty,max=20"`
	BatchNumber  string   `json:"batchNumber" validate:"omitempty,max=50"`
	ExpiryDate   string   `json:"expiryDate" validate:"omitempty,date_iso"`
	ReorderLevel *int     `json:"reorderLevel" validate:"omitempty,gte=0"`
	UnitPrice    *float64 `json:"unitPrice" validate:"omitempty,gte=0"`
}

type AdjustStock struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

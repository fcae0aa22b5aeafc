package models

type InventoryItem struct {
	ID              string  `bson:"_id,omitempty"`
	TenantID        string  `bson:"tenantId"`
	Name            string  `bson:"name"`
	SKU             string  `bson:"sku,omitempty"`
	Unit            string  `bson:"unit"`
	BatchNumber     string  `bson:"batchNumber,omitempty"`
	ExpiryDate      string  `bson:"expiryDate,omitempty"`
	QuantityInStock int     `bson:"quantityInStock"`
	ReorderLevel    int     `bson:"reorderLevel"`
	UnitPrice       float64 `bson:"unitPrice"`
	TimeModel       `bson:",inline"`
}

package responses

type ReportBucket struct {
	Key   string `json:"key" bson:"_id"`
	Count int    `json:"count" bson:"count"`
}

type RevenueBucket struct {
	Date    string  `json:"date" bson:"_id"`
	Revenue float64 `json:"revenue" bson:"revenue"`
	Count   int     `json:"count" bson:"count"`
}

type LowStockItem struct {
	ID              string `json:"id" bson:"_id"`
	Name            string `json:"name" bson:"name"`
	QuantityInStock int    `json:"quantityInStock" bson:"quantityInStock"`
	ReorderLevel    int    `json:"reorderLevel" bson:"reorderLevel"`
}

type AppointmentReport struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Total    int            `json:"total"`
	ByStatus []ReportBucket `json:"byStatus"`
}

type RevenueReport struct {
	From         string          `json:"from"`
	To           string          `json:"to"`
	TotalRevenue float64         `json:"totalRevenue"`
	TotalPaid    int             `json:"totalPaid"`
	ByDay        []RevenueBucket `json:"byDay"`
}

type InventoryReport struct {
	LowStock []LowStockItem `json:"lowStock"`
}

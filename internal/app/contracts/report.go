package contracts

import (
	"context"

	"clinicstack-service/internal/pkg/dto/responses"
)

type ReportRepository interface {
	AppointmentCountsByStatus(ctx context.Context, tenantID, fromDate, toDate string) ([]responses.ReportBucket, error)
	RevenueByDay(ctx context.Context, tenantID, fromDate, toDate string) ([]responses.RevenueBucket, error)
	LowStockItems(ctx context.Context, tenantID string) ([]responses.LowStockItem, error)
}

type ReportUsecase interface {
	AppointmentReport(ctx context.Context, tenantID, fromDate, toDate string) (*responses.AppointmentReport, error)
	RevenueReport(ctx context.Context, tenantID, fromDate, toDate string) (*responses.RevenueReport, error)
	InventoryReport(ctx context.Context, tenantID string) (*responses.InventoryReport, error)
}

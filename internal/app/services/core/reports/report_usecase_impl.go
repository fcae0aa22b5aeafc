package reports

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository contracts.ReportRepository
	Log              *zap.Logger
}

func NewReportUsecase(reportRepository contracts.ReportRepository, logger *zap.Logger) contracts.ReportUsecase {
	return &reportUsecase{
		ReportRepository: reportRepository,
		Log:              logger,
	}
}

func (uc *reportUsecase) AppointmentReport(ctx context.Context, tenantID, fromDate, toDate string) (*responses.AppointmentReport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("reportUsecase.AppointmentReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	buckets, err := uc.ReportRepository.AppointmentCountsByStatus(ctx, tenantID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, bucket := range buckets {
		total += bucket.Count
	}

	return &responses.AppointmentReport{
		From:     fromDate,
		To:       toDate,
		Total:    total,
		ByStatus: buckets,
	}, nil
}

func (uc *reportUsecase) RevenueReport(ctx context.Context, tenantID, fromDate, toDate string) (*responses.RevenueReport, error) {
	buckets, err := uc.ReportRepository.RevenueByDay(ctx, tenantID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	totalRevenue := 0.0
	totalPaid := 0
	for _, bucket := range buckets {
		totalRevenue += bucket.Revenue
		totalPaid += bucket.Count
	}

	return &responses.RevenueReport{
		From:         fromDate,
		To:           toDate,
		TotalRevenue: totalRevenue,
		TotalPaid:    totalPaid,
		ByDay:        buckets,
	}, nil
}

func (uc *reportUsecase) InventoryReport(ctx context.Context, tenantID string) (*responses.InventoryReport, error) {
	lowStock, err := uc.ReportRepository.LowStockItems(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return &responses.InventoryReport{LowStock: lowStock}, nil
}

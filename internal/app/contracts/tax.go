package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type TaxConfigRepository interface {
	CreateTaxConfig(ctx context.Context, taxConfig *models.TaxConfig) (string, error)
	FindAll(ctx context.Context, tenantID string, onlyEnabled bool) ([]models.TaxConfig, error)
	UpdateTaxConfig(ctx context.Context, taxConfig *models.TaxConfig) error
	DeleteTaxConfig(ctx context.Context, tenantID, taxConfigID string) error
}

type TaxConfigUsecase interface {
	CreateTaxConfig(ctx context.Context, tenantID string, request *requests.CreateTaxConfig) (string, error)
	GetTaxConfigs(ctx context.Context, tenantID string) ([]responses.TaxConfig, error)
	UpdateTaxConfig(ctx context.Context, tenantID, taxConfigID string, request *requests.UpdateTaxConfig) error
	DeleteTaxConfig(ctx context.Context, tenantID, taxConfigID string) error
}

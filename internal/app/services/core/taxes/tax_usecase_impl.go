package taxes

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type taxConfigUsecase struct {
	TaxConfigRepository contracts.TaxConfigRepository
	Log                 *zap.Logger
}

func NewTaxConfigUsecase(taxConfigRepository contracts.TaxConfigRepository, logger *zap.Logger) contracts.TaxConfigUsecase {
	return &taxConfigUsecase{
		TaxConfigRepository: taxConfigRepository,
		Log:                 logger,
	}
}

func (uc *taxConfigUsecase) CreateTaxConfig(ctx context.Context, tenantID string, request *requests.CreateTaxConfig) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("taxConfigUsecase.CreateTaxConfig called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	now := time.Now()
	taxConfig := &models.TaxConfig{
		TenantID:    tenantID,
		Name:        request.Name,
		RatePercent: request.RatePercent,
		IsEnabled:   request.IsEnabled,
	}
	taxConfig.CreatedAt = now
	taxConfig.UpdatedAt = now

	return uc.TaxConfigRepository.CreateTaxConfig(ctx, taxConfig)
}

func (uc *taxConfigUsecase) GetTaxConfigs(ctx context.Context, tenantID string) ([]responses.TaxConfig, error) {
	taxConfigs, err := uc.TaxConfigRepository.FindAll(ctx, tenantID, false)
	if err != nil {
		return nil, err
	}

	results := make([]responses.TaxConfig, 0, len(taxConfigs))
	for _, taxConfig := range taxConfigs {
		results = append(results, responses.TaxConfig{
			ID:          taxConfig.ID,
			Name:        taxConfig.Name,
			RatePercent: taxConfig.RatePercent,
			IsEnabled:   taxConfig.IsEnabled,
		})
	}
	return results, nil
}

func (uc *taxConfigUsecase) UpdateTaxConfig(ctx context.Context, tenantID, taxConfigID string, request *requests.UpdateTaxConfig) error {
	taxConfigs, err := uc.TaxConfigRepository.FindAll(ctx, tenantID, false)
	if err != nil {
		return err
	}

	var taxConfig *models.TaxConfig
	for i := range taxConfigs {
		if taxConfigs[i].ID == taxConfigID {
			taxConfig = &taxConfigs[i]
			break
		}
	}
	if taxConfig == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	if request.Name != "" {
		taxConfig.Name = request.Name
	}
	if request.RatePercent != nil {
		taxConfig.RatePercent = *request.RatePercent
	}
	if request.IsEnabled != nil {
		taxConfig.IsEnabled = *request.IsEnabled
	}
	taxConfig.UpdatedAt = time.Now()

	return uc.TaxConfigRepository.UpdateTaxConfig(ctx, taxConfig)
}

func (uc *taxConfigUsecase) DeleteTaxConfig(ctx context.Context, tenantID, taxConfigID string) error {
	return uc.TaxConfigRepository.DeleteTaxConfig(ctx, tenantID, taxConfigID)
}

package tenants

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type tenantUsecase struct {
	TenantRepository contracts.TenantRepository
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
}

func NewTenantUsecase(
	tenantRepository contracts.TenantRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.TenantUsecase {
	return &tenantUsecase{
		TenantRepository: tenantRepository,
		RedisRepository:  redisRepository,
		Log:              logger,
	}
}

// ResolveBySlug maps a public booking slug to its tenant. Every request on
// the public surface goes through this, so resolved tenants are cached.
func (uc *tenantUsecase) ResolveBySlug(ctx context.Context, slug string) (*responses.Tenant, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyTenantSlugFormat, slug)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var tenant models.Tenant
		if json.Unmarshal([]byte(cached), &tenant) == nil {
			return buildTenantResponse(&tenant), nil
		}
	}

	tenant, err := uc.TenantRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if tenant == nil || !tenant.IsActive {
		return nil, exceptions.ErrClinicNotFound(nil)
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, tenant, 10*time.Minute)
	if err != nil {
		uc.Log.Warn("tenantUsecase.ResolveBySlug failed to cache tenant", zap.Error(err))
	}

	return buildTenantResponse(tenant), nil
}

func buildTenantResponse(tenant *models.Tenant) *responses.Tenant {
	return &responses.Tenant{
		ID:          tenant.ID,
		Name:        tenant.Name,
		BookingSlug: tenant.BookingSlug,
		Country:     tenant.Country,
		Currency:    tenant.Currency,
	}
}

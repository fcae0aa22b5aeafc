package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/responses"
)

type TenantRepository interface {
	FindByID(ctx context.Context, tenantID string) (*models.Tenant, error)
	FindBySlug(ctx context.Context, slug string) (*models.Tenant, error)
}

type TenantUsecase interface {
	ResolveBySlug(ctx context.Context, slug string) (*responses.Tenant, error)
}

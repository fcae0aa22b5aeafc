package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type InventoryRepository interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) (string, error)
	FindByID(ctx context.Context, tenantID, itemID string) (*models.InventoryItem, error)
	FindAll(ctx context.Context, tenantID, search string, page, pageSize int) ([]models.InventoryItem, int, error)
	UpdateItem(ctx context.Context, item *models.InventoryItem) error
	AdjustStock(ctx context.Context, tenantID, itemID string, delta int) error
}

type InventoryUsecase interface {
	CreateItem(ctx context.Context, tenantID string, request *requests.CreateInventoryItem) (string, error)
	GetItemByID(ctx context.Context, tenantID, itemID string) (*responses.InventoryItem, error)
	GetItems(ctx context.Context, tenantID string, pagination *requests.Pagination, search string) ([]responses.InventoryItem, int, error)
	UpdateItem(ctx context.Context, tenantID, itemID string, request *requests.UpdateInventoryItem) error
	AdjustStock(ctx context.Context, tenantID, itemID string, request *requests.AdjustStock) error
}

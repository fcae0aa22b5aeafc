package inventory

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

type inventoryUsecase struct {
	InventoryRepository contracts.InventoryRepository
	Log                 *zap.Logger
}

func NewInventoryUsecase(inventoryRepository contracts.InventoryRepository, logger *zap.Logger) contracts.InventoryUsecase {
	return &inventoryUsecase{
		InventoryRepository: inventoryRepository,
		Log:                 logger,
	}
}

func (uc *inventoryUsecase) CreateItem(ctx context.Context, tenantID string, request *requests.CreateInventoryItem) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.CreateItem called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	now := time.Now()
	item := &models.InventoryItem{
		TenantID:        tenantID,
		Name:            request.Name,
		SKU:             request.SKU,
		Unit:            request.Unit,
		BatchNumber:     request.BatchNumber,
		ExpiryDate:      request.ExpiryDate,
		QuantityInStock: request.QuantityInStock,
		ReorderLevel:    request.ReorderLevel,
		UnitPrice:       request.UnitPrice,
	}
	item.CreatedAt = now
	item.UpdatedAt = now

	return uc.InventoryRepository.CreateItem(ctx, item)
}

func (uc *inventoryUsecase) GetItemByID(ctx context.Context, tenantID, itemID string) (*responses.InventoryItem, error) {
	item, err := uc.InventoryRepository.FindByID(ctx, tenantID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}
	return buildInventoryItemResponse(item), nil
}

func (uc *inventoryUsecase) GetItems(ctx context.Context, tenantID string, pagination *requests.Pagination, search string) ([]responses.InventoryItem, int, error) {
	items, total, err := uc.InventoryRepository.FindAll(ctx, tenantID, search, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.InventoryItem, 0, len(items))
	for i := range items {
		results = append(results, *buildInventoryItemResponse(&items[i]))
	}
	return results, total, nil
}

func (uc *inventoryUsecase) UpdateItem(ctx context.Context, tenantID, itemID string, request *requests.UpdateInventoryItem) error {
	item, err := uc.InventoryRepository.FindByID(ctx, tenantID, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return exceptions.ErrDataNotFound(nil)
	}

	if request.Name != "" {
		item.Name = request.Name
	}
	if request.Unit != "" {
		item.Unit = request.Unit
	}
	if request.BatchNumber != "" {
		item.BatchNumber = request.BatchNumber
	}
	if request.ExpiryDate != "" {
		item.ExpiryDate = request.ExpiryDate
	}
	if request.ReorderLevel != nil {
		item.ReorderLevel = *request.ReorderLevel
	}
	if request.UnitPrice != nil {
		item.UnitPrice = *request.UnitPrice
	}
	item.UpdatedAt = time.Now()

	return uc.InventoryRepository.UpdateItem(ctx, item)
}

func (uc *inventoryUsecase) AdjustStock(ctx context.Context, tenantID, itemID string, request *requests.AdjustStock) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.AdjustStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.Int("delta", request.Delta),
		zap.String("reason", request.Reason),
	)

	return uc.InventoryRepository.AdjustStock(ctx, tenantID, itemID, request.Delta)
}

func buildInventoryItemResponse(item *models.InventoryItem) *responses.InventoryItem {
	return &responses.InventoryItem{
		ID:              item.ID,
		Name:            item.Name,
		SKU:             item.SKU,
		Unit:            item.Unit,
		BatchNumber:     item.BatchNumber,
		ExpiryDate:      item.ExpiryDate,
		QuantityInStock: item.QuantityInStock,
		ReorderLevel:    item.ReorderLevel,
		UnitPrice:       item.UnitPrice,
		IsLowStock:      item.QuantityInStock <= item.ReorderLevel,
	}
}

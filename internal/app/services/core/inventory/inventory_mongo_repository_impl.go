package inventory

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type InventoryMongoRepository struct {
	Collection *mongo.Collection
}

func NewInventoryMongoRepository(db *mongo.Client, dbName string) contracts.InventoryRepository {
	return &InventoryMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionInventory),
	}
}

func (r *InventoryMongoRepository) CreateItem(ctx context.Context, item *models.InventoryItem) (string, error) {
	result, err := r.Collection.InsertOne(ctx, item)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *InventoryMongoRepository) FindByID(ctx context.Context, tenantID, itemID string) (*models.InventoryItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var item models.InventoryItem
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (r *InventoryMongoRepository) FindAll(ctx context.Context, tenantID, search string, page, pageSize int) ([]models.InventoryItem, int, error) {
	filter := bson.M{"tenantId": tenantID}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"sku": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return items, int(total), nil
}

func (r *InventoryMongoRepository) UpdateItem(ctx context.Context, item *models.InventoryItem) error {
	objectID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": item.TenantID}
	update := bson.M{"$set": bson.M{
		"name":         item.Name,
		"unit":         item.Unit,
		"batchNumber":  item.BatchNumber,
		"expiryDate":   item.ExpiryDate,
		"reorderLevel": item.ReorderLevel,
		"unitPrice":    item.UnitPrice,
		"updatedAt":    item.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDataNotFound(nil)
	}
	return nil
}

// AdjustStock applies the delta atomically. A negative delta only matches
// when enough stock remains, so the quantity can never go below zero even
// with concurrent dispenses.
func (r *InventoryMongoRepository) AdjustStock(ctx context.Context, tenantID, itemID string, delta int) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	if delta < 0 {
		filter["quantityInStock"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"quantityInStock": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		if delta < 0 {
			return exceptions.ErrInsufficientStock(nil)
		}
		return exceptions.ErrDataNotFound(nil)
	}
	return nil
}

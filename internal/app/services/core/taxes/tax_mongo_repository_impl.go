package taxes

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TaxConfigMongoRepository struct {
	Collection *mongo.Collection
}

func NewTaxConfigMongoRepository(db *mongo.Client, dbName string) contracts.TaxConfigRepository {
	return &TaxConfigMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTaxConfigs),
	}
}

func (r *TaxConfigMongoRepository) CreateTaxConfig(ctx context.Context, taxConfig *models.TaxConfig) (string, error) {
	result, err := r.Collection.InsertOne(ctx, taxConfig)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *TaxConfigMongoRepository) FindAll(ctx context.Context, tenantID string, onlyEnabled bool) ([]models.TaxConfig, error) {
	filter := bson.M{"tenantId": tenantID}
	if onlyEnabled {
		filter["isEnabled"] = true
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var taxConfigs []models.TaxConfig
	err = cursor.All(ctx, &taxConfigs)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return taxConfigs, nil
}

func (r *TaxConfigMongoRepository) UpdateTaxConfig(ctx context.Context, taxConfig *models.TaxConfig) error {
	objectID, err := primitive.ObjectIDFromHex(taxConfig.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": taxConfig.TenantID}
	update := bson.M{"$set": bson.M{
		"name":        taxConfig.Name,
		"ratePercent": taxConfig.RatePercent,
		"isEnabled":   taxConfig.IsEnabled,
		"updatedAt":   taxConfig.UpdatedAt,
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

func (r *TaxConfigMongoRepository) DeleteTaxConfig(ctx context.Context, tenantID, taxConfigID string) error {
	objectID, err := primitive.ObjectIDFromHex(taxConfigID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": objectID, "tenantId": tenantID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDataNotFound(nil)
	}
	return nil
}

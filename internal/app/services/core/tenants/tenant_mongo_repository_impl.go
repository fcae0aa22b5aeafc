package tenants

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type TenantMongoRepository struct {
	Collection *mongo.Collection
}

func NewTenantMongoRepository(db *mongo.Client, dbName string) contracts.TenantRepository {
	return &TenantMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTenants),
	}
}

func (r *TenantMongoRepository) FindByID(ctx context.Context, tenantID string) (*models.Tenant, error) {
	objectID, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var tenant models.Tenant
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tenant, nil
}

func (r *TenantMongoRepository) FindBySlug(ctx context.Context, slug string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.Collection.FindOne(ctx, bson.M{"bookingSlug": slug}).Decode(&tenant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &tenant, nil
}

package invoices

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

type InvoiceMongoRepository struct {
	Collection        *mongo.Collection
	CounterCollection *mongo.Collection
}

func NewInvoiceMongoRepository(db *mongo.Client, dbName string) contracts.InvoiceRepository {
	return &InvoiceMongoRepository{
		Collection:        db.Database(dbName).Collection(constvars.MongoCollectionInvoices),
		CounterCollection: db.Database(dbName).Collection(constvars.MongoCollectionCounters),
	}
}

func (r *InvoiceMongoRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) (string, error) {
	result, err := r.Collection.InsertOne(ctx, invoice)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *InvoiceMongoRepository) FindByID(ctx context.Context, tenantID, invoiceID string) (*models.Invoice, error) {
	objectID, err := primitive.ObjectIDFromHex(invoiceID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var invoice models.Invoice
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &invoice, nil
}

func (r *InvoiceMongoRepository) FindAll(ctx context.Context, tenantID, status string, page, pageSize int) ([]models.Invoice, int, error) {
	filter := bson.M{"tenantId": tenantID}
	if status != "" {
		filter["status"] = status
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	err = cursor.All(ctx, &invoices)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return invoices, int(total), nil
}

func (r *InvoiceMongoRepository) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	objectID, err := primitive.ObjectIDFromHex(invoice.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": invoice.TenantID}
	update := bson.M{"$set": bson.M{
		"invoiceNumber": invoice.InvoiceNumber,
		"items":         invoice.Items,
		"subtotal":      invoice.Subtotal,
		"discount":      invoice.Discount,
		"taxLines":      invoice.TaxLines,
		"grandTotal":    invoice.GrandTotal,
		"status":        invoice.Status,
		"issuedAt":      invoice.IssuedAt,
		"paidAt":        invoice.PaidAt,
		"updatedAt":     invoice.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInvoiceNotFound(nil)
	}
	return nil
}

// NextInvoiceSequence bumps the per-tenant counter document atomically and
// returns the new value. Sequences therefore never repeat within a tenant.
func (r *InvoiceMongoRepository) NextInvoiceSequence(ctx context.Context, tenantID string) (int64, error) {
	filter := bson.M{"_id": "invoice:" + tenantID}
	update := bson.M{"$inc": bson.M{"sequence": int64(1)}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Sequence int64 `bson:"sequence"`
	}
	err := r.CounterCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return counter.Sequence, nil
}

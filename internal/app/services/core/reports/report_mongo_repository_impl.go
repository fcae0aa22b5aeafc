package reports

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ReportMongoRepository struct {
	AppointmentCollection *mongo.Collection
	InvoiceCollection     *mongo.Collection
	InventoryCollection   *mongo.Collection
}

func NewReportMongoRepository(db *mongo.Client, dbName string) contracts.ReportRepository {
	database := db.Database(dbName)
	return &ReportMongoRepository{
		AppointmentCollection: database.Collection(constvars.MongoCollectionAppointments),
		InvoiceCollection:     database.Collection(constvars.MongoCollectionInvoices),
		InventoryCollection:   database.Collection(constvars.MongoCollectionInventory),
	}
}

func (r *ReportMongoRepository) AppointmentCountsByStatus(ctx context.Context, tenantID, fromDate, toDate string) ([]responses.ReportBucket, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"tenantId": tenantID,
			"date":     bson.M{"$gte": fromDate, "$lte": toDate},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.AppointmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var buckets []responses.ReportBucket
	err = cursor.All(ctx, &buckets)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	return buckets, nil
}

func (r *ReportMongoRepository) RevenueByDay(ctx context.Context, tenantID, fromDate, toDate string) ([]responses.RevenueBucket, error) {
	from, err := time.Parse(constvars.DateLayoutISO, fromDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	to, err := time.Parse(constvars.DateLayoutISO, toDate)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"tenantId": tenantID,
			"status":   constvars.InvoiceStatusPaid,
			"paidAt":   bson.M{"$gte": from, "$lt": to.AddDate(0, 0, 1)},
		}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$paidAt"}},
			"revenue": bson.M{"$sum": "$grandTotal"},
			"count":   bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.InvoiceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var buckets []responses.RevenueBucket
	err = cursor.All(ctx, &buckets)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	return buckets, nil
}

func (r *ReportMongoRepository) LowStockItems(ctx context.Context, tenantID string) ([]responses.LowStockItem, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"tenantId": tenantID,
			"$expr":    bson.M{"$lte": bson.A{"$quantityInStock", "$reorderLevel"}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"name":            1,
			"quantityInStock": 1,
			"reorderLevel":    1,
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"quantityInStock": 1}}},
	}

	cursor, err := r.InventoryCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var items []responses.LowStockItem
	err = cursor.All(ctx, &items)
	if err != nil {
		return nil, exceptions.ErrMongoDBAggregate(err)
	}
	return items, nil
}

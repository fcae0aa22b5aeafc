package database

import (
	"context"
	"time"

	"clinicstack-service/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the application relies on. CreateMany is
// idempotent, so this is safe to run on every startup.
func EnsureIndexes(client *mongo.Client, dbName string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(dbName)

	indexSets := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionTenants: {
			{
				Keys:    bson.D{{Key: "bookingSlug", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionDoctorSchedules: {
			{
				Keys: bson.D{
					{Key: "tenantId", Value: 1},
					{Key: "doctorId", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
		constvars.MongoCollectionAppointments: {
			{
				Keys: bson.D{
					{Key: "tenantId", Value: 1},
					{Key: "doctorId", Value: 1},
					{Key: "date", Value: 1},
					{Key: "startTime", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "tenantId", Value: 1},
					{Key: "patientId", Value: 1},
				},
			},
		},
		constvars.MongoCollectionPatients: {
			{
				Keys: bson.D{
					{Key: "tenantId", Value: 1},
					{Key: "phoneNumber", Value: 1},
				},
			},
		},
		constvars.MongoCollectionInvoices: {
			{
				Keys: bson.D{
					{Key: "tenantId", Value: 1},
					{Key: "status", Value: 1},
				},
			},
		},
	}

	for collection, indexes := range indexSets {
		_, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			logrus.Fatalf("Failed to create indexes on collection %s: %v", collection, err)
		}
	}
	logrus.Info("mongo indexes ensured")
}

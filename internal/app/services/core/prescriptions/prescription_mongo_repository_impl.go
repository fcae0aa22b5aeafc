package prescriptions

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

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, tenantID, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var prescription models.Prescription
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindByPatientID(ctx context.Context, tenantID, patientID string, page, pageSize int) ([]models.Prescription, int, error) {
	filter := bson.M{"tenantId": tenantID, "patientId": patientID}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "issuedAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	err = cursor.All(ctx, &prescriptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return prescriptions, int(total), nil
}

// MarkDispensed flips the flag only when it is still unset, so a prescription
// cannot be dispensed twice.
func (r *PrescriptionMongoRepository) MarkDispensed(ctx context.Context, tenantID, prescriptionID string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": tenantID, "isDispensed": false}
	update := bson.M{"$set": bson.M{"isDispensed": true, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInvalidStatusTransition(nil)
	}
	return nil
}

package patients

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, tenantID, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	filter := bson.M{"_id": objectID, "tenantId": tenantID, "deletedAt": bson.M{"$exists": false}}
	err = r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context, tenantID, search string, page, pageSize int) ([]models.Patient, int, error) {
	filter := bson.M{"tenantId": tenantID, "deletedAt": bson.M{"$exists": false}}
	if search != "" {
		filter["$or"] = bson.A{
			bson.M{"fullName": bson.M{"$regex": search, "$options": "i"}},
			bson.M{"phoneNumber": bson.M{"$regex": search, "$options": "i"}},
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "fullName", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return patients, int(total), nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	objectID, err := primitive.ObjectIDFromHex(patient.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": patient.TenantID}
	update := bson.M{"$set": bson.M{
		"fullName":       patient.FullName,
		"email":          patient.Email,
		"phoneNumber":    patient.PhoneNumber,
		"dateOfBirth":    patient.DateOfBirth,
		"gender":         patient.Gender,
		"bloodGroup":     patient.BloodGroup,
		"address":        patient.Address,
		"allergies":      patient.Allergies,
		"medicalHistory": patient.MedicalHistory,
		"updatedAt":      patient.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

// DeletePatient soft-deletes; appointments and documents keep referencing the
// patient record.
func (r *PatientMongoRepository) DeletePatient(ctx context.Context, tenantID, patientID string) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"deletedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrPatientNotFound(nil)
	}
	return nil
}

func (r *PatientMongoRepository) FindByPhoneNumber(ctx context.Context, tenantID, phoneNumber string) (*models.Patient, error) {
	var patient models.Patient
	filter := bson.M{"tenantId": tenantID, "phoneNumber": phoneNumber, "deletedAt": bson.M{"$exists": false}}
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

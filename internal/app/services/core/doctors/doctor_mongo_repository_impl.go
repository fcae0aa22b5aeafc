package doctors

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

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (r *DoctorMongoRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	result, err := r.Collection.InsertOne(ctx, doctor)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *DoctorMongoRepository) FindByID(ctx context.Context, tenantID, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (r *DoctorMongoRepository) FindAll(ctx context.Context, tenantID string, onlyActive bool, page, pageSize int) ([]models.Doctor, int, error) {
	filter := bson.M{"tenantId": tenantID}
	if onlyActive {
		filter["isActive"] = true
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

	var doctors []models.Doctor
	err = cursor.All(ctx, &doctors)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return doctors, int(total), nil
}

func (r *DoctorMongoRepository) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	objectID, err := primitive.ObjectIDFromHex(doctor.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": doctor.TenantID}
	update := bson.M{"$set": bson.M{
		"fullName":        doctor.FullName,
		"specialization":  doctor.Specialization,
		"qualification":   doctor.Qualification,
		"email":           doctor.Email,
		"phoneNumber":     doctor.PhoneNumber,
		"consultationFee": doctor.ConsultationFee,
		"isActive":        doctor.IsActive,
		"updatedAt":       doctor.UpdatedAt,
	}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return nil
}

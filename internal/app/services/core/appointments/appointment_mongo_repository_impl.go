package appointments

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", exceptions.ErrMongoDBNotObjectID(nil)
	}
	return objectID.Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, tenantID, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	err = r.Collection.FindOne(ctx, filter).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindByDoctorAndDate returns every non-cancelled appointment for the doctor
// on the given date; the conflict filter counts these per start time.
func (r *AppointmentMongoRepository) FindByDoctorAndDate(ctx context.Context, tenantID, doctorID, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"tenantId": tenantID,
		"doctorId": doctorID,
		"date":     date,
		"status":   bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) FindAll(ctx context.Context, tenantID string, appointmentFilter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	filter := bson.M{"tenantId": tenantID}
	if appointmentFilter != nil {
		if appointmentFilter.DoctorID != "" {
			filter["doctorId"] = appointmentFilter.DoctorID
		}
		if appointmentFilter.PatientID != "" {
			filter["patientId"] = appointmentFilter.PatientID
		}
		if appointmentFilter.Date != "" {
			filter["date"] = appointmentFilter.Date
		}
		if appointmentFilter.Status != "" {
			filter["status"] = appointmentFilter.Status
		}
	}

	total, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	err = cursor.All(ctx, &appointments)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return appointments, int(total), nil
}

func (r *AppointmentMongoRepository) CountAtSlot(ctx context.Context, tenantID, doctorID, date, startTime string) (int64, error) {
	filter := bson.M{
		"tenantId":  tenantID,
		"doctorId":  doctorID,
		"date":      date,
		"startTime": startTime,
		"status":    bson.M{"$ne": constvars.AppointmentStatusCancelled},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocument(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) UpdateStatus(ctx context.Context, tenantID, appointmentID, status string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "tenantId": tenantID}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

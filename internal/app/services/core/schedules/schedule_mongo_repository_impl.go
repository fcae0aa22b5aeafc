package schedules

import (
	"context"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ScheduleMongoRepository struct {
	Collection *mongo.Collection
}

func NewScheduleMongoRepository(db *mongo.Client, dbName string) contracts.ScheduleRepository {
	return &ScheduleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorSchedules),
	}
}

// UpsertSchedule writes the one schedule document per (tenantId, doctorId);
// the collection carries a unique compound index on that pair.
func (r *ScheduleMongoRepository) UpsertSchedule(ctx context.Context, schedule *models.DoctorSchedule) error {
	filter := bson.M{
		"tenantId": schedule.TenantID,
		"doctorId": schedule.DoctorID,
	}
	update := bson.M{"$set": bson.M{
		"tenantId":                schedule.TenantID,
		"doctorId":                schedule.DoctorID,
		"weeklySchedule":          schedule.WeeklySchedule,
		"slotDurationMinutes":     schedule.SlotDurationMinutes,
		"bufferTimeMinutes":       schedule.BufferTimeMinutes,
		"maxPatientsPerSlot":      schedule.MaxPatientsPerSlot,
		"advanceBookingDays":      schedule.AdvanceBookingDays,
		"isAcceptingAppointments": schedule.IsAcceptingAppointments,
		"acceptsOnlineBooking":    schedule.AcceptsOnlineBooking,
		"leaveDates":              schedule.LeaveDates,
		"updatedAt":               schedule.UpdatedAt,
	}, "$setOnInsert": bson.M{
		"createdAt": schedule.CreatedAt,
	}}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ScheduleMongoRepository) FindByDoctorID(ctx context.Context, tenantID, doctorID string) (*models.DoctorSchedule, error) {
	var schedule models.DoctorSchedule
	filter := bson.M{
		"tenantId": tenantID,
		"doctorId": doctorID,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&schedule)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &schedule, nil
}

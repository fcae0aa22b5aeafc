package availability

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	ScheduleRepository    contracts.ScheduleRepository
	AppointmentRepository contracts.AppointmentRepository
	RedisRepository       contracts.RedisRepository
	Log                   *zap.Logger
}

func NewAvailabilityUsecase(
	scheduleRepository contracts.ScheduleRepository,
	appointmentRepository contracts.AppointmentRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		ScheduleRepository:    scheduleRepository,
		AppointmentRepository: appointmentRepository,
		RedisRepository:       redisRepository,
		Log:                   logger,
	}
}

func (uc *availabilityUsecase) GetAvailability(ctx context.Context, tenantID, doctorID, date string, publicBooking bool) (*responses.Availability, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, date),
	)

	targetDate, err := time.ParseInLocation(constvars.DateLayoutISO, date, time.Local)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	schedule, err := uc.findSchedule(ctx, tenantID, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		// No availability configured. Same fallback for dashboard and
		// public callers.
		return &responses.Availability{
			AvailableSlots: []string{},
			Message:        constvars.MsgNoScheduleConfigured,
		}, nil
	}

	appointments, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, tenantID, doctorID, date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	result := ComputeAvailability(schedule, appointments, targetDate, today, publicBooking)

	return &responses.Availability{
		AvailableSlots: result.AvailableSlots,
		SlotDuration:   result.SlotDuration,
		Message:        result.Message,
	}, nil
}

// findSchedule reads through the redis cache; the schedules usecase deletes
// the key on every upsert. A nil schedule with nil error means none is
// configured.
func (uc *availabilityUsecase) findSchedule(ctx context.Context, tenantID, doctorID string) (*models.DoctorSchedule, error) {
	cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorScheduleFormat, tenantID, doctorID)

	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var schedule models.DoctorSchedule
		if err := json.Unmarshal([]byte(cached), &schedule); err == nil {
			return &schedule, nil
		}
	}

	schedule, err := uc.ScheduleRepository.FindByDoctorID(ctx, tenantID, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, nil
	}

	err = uc.RedisRepository.Set(ctx, cacheKey, schedule, 10*time.Minute)
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		uc.Log.Warn("availabilityUsecase.findSchedule failed to cache schedule",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return schedule, nil
}

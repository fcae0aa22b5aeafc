package schedules

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleUsecase struct {
	ScheduleRepository contracts.ScheduleRepository
	DoctorRepository   contracts.DoctorRepository
	RedisRepository    contracts.RedisRepository
	Log                *zap.Logger
}

func NewScheduleUsecase(
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.ScheduleUsecase {
	return &scheduleUsecase{
		ScheduleRepository: scheduleRepository,
		DoctorRepository:   doctorRepository,
		RedisRepository:    redisRepository,
		Log:                logger,
	}
}

func (uc *scheduleUsecase) UpsertSchedule(ctx context.Context, tenantID, doctorID string, request *requests.UpsertDoctorSchedule) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("scheduleUsecase.UpsertSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, tenantID, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	err = validateTimeRanges(request.WeeklySchedule)
	if err != nil {
		return err
	}

	now := time.Now()
	schedule := &models.DoctorSchedule{
		TenantID:                tenantID,
		DoctorID:                doctorID,
		WeeklySchedule:          buildWeeklySchedule(request.WeeklySchedule),
		SlotDurationMinutes:     request.SlotDurationMinutes,
		BufferTimeMinutes:       request.BufferTimeMinutes,
		MaxPatientsPerSlot:      request.MaxPatientsPerSlot,
		AdvanceBookingDays:      request.AdvanceBookingDays,
		IsAcceptingAppointments: request.IsAcceptingAppointments,
		AcceptsOnlineBooking:    request.AcceptsOnlineBooking,
		LeaveDates:              request.LeaveDates,
	}
	schedule.CreatedAt = now
	schedule.UpdatedAt = now

	err = uc.ScheduleRepository.UpsertSchedule(ctx, schedule)
	if err != nil {
		return err
	}

	// The availability engine reads schedules through this cache key.
	cacheKey := fmt.Sprintf(constvars.RedisKeyDoctorScheduleFormat, tenantID, doctorID)
	err = uc.RedisRepository.Delete(ctx, cacheKey)
	if err != nil {
		uc.Log.Warn("scheduleUsecase.UpsertSchedule failed to invalidate schedule cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return nil
}

func (uc *scheduleUsecase) GetScheduleByDoctorID(ctx context.Context, tenantID, doctorID string) (*responses.DoctorSchedule, error) {
	schedule, err := uc.ScheduleRepository.FindByDoctorID(ctx, tenantID, doctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.ErrDataNotFound(nil)
	}

	return &responses.DoctorSchedule{
		DoctorID:                schedule.DoctorID,
		WeeklySchedule:          schedule.WeeklySchedule,
		SlotDurationMinutes:     schedule.SlotDurationMinutes,
		BufferTimeMinutes:       schedule.BufferTimeMinutes,
		MaxPatientsPerSlot:      schedule.MaxPatientsPerSlot,
		AdvanceBookingDays:      schedule.AdvanceBookingDays,
		IsAcceptingAppointments: schedule.IsAcceptingAppointments,
		AcceptsOnlineBooking:    schedule.AcceptsOnlineBooking,
		LeaveDates:              schedule.LeaveDates,
	}, nil
}

// validateTimeRanges rejects ranges whose end does not come after their
// start. Overlap between ranges within a day is intentionally not rejected;
// the generator emits duplicate candidates for overlapping ranges.
func validateTimeRanges(weekly []requests.ScheduleDay) error {
	for _, day := range weekly {
		for _, timeRange := range day.TimeRanges {
			startMinutes, err := utils.ClockTimeToMinutes(timeRange.StartTime)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}
			endMinutes, err := utils.ClockTimeToMinutes(timeRange.EndTime)
			if err != nil {
				return exceptions.ErrInputValidation(err)
			}
			if endMinutes <= startMinutes {
				return exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest,
					fmt.Sprintf("time range %s-%s on %s must end after it starts", timeRange.StartTime, timeRange.EndTime, day.Day),
					constvars.ErrDevValidationFailed)
			}
		}
	}
	return nil
}

func buildWeeklySchedule(weekly []requests.ScheduleDay) []models.DaySchedule {
	days := make([]models.DaySchedule, 0, len(weekly))
	for _, day := range weekly {
		timeRanges := make([]models.TimeRange, 0, len(day.TimeRanges))
		for _, timeRange := range day.TimeRanges {
			timeRanges = append(timeRanges, models.TimeRange{
				StartTime: timeRange.StartTime,
				EndTime:   timeRange.EndTime,
			})
		}
		days = append(days, models.DaySchedule{
			Day:        day.Day,
			IsWorking:  day.IsWorking,
			TimeRanges: timeRanges,
		})
	}
	return days
}

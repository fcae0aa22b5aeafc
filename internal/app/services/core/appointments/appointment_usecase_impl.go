package appointments

import (
	"context"
	"fmt"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/app/services/core/availability"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// allowedStatusTransitions maps a current appointment status to the statuses
// it may move to. Completed, cancelled and no-show are terminal.
var allowedStatusTransitions = map[string][]string{
	constvars.AppointmentStatusScheduled:  {constvars.AppointmentStatusConfirmed, constvars.AppointmentStatusInProgress, constvars.AppointmentStatusCancelled, constvars.AppointmentStatusNoShow},
	constvars.AppointmentStatusConfirmed:  {constvars.AppointmentStatusInProgress, constvars.AppointmentStatusCancelled, constvars.AppointmentStatusNoShow},
	constvars.AppointmentStatusInProgress: {constvars.AppointmentStatusCompleted},
}

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	ScheduleRepository    contracts.ScheduleRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	NotificationPublisher contracts.NotificationPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	scheduleRepository contracts.ScheduleRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		ScheduleRepository:    scheduleRepository,
		DoctorRepository:      doctorRepository,
		PatientRepository:     patientRepository,
		NotificationPublisher: notificationPublisher,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, tenantID string, request *requests.BookAppointment, source string) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, tenantID, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	schedule, err := uc.ScheduleRepository.FindByDoctorID(ctx, tenantID, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest,
			constvars.MsgNoScheduleConfigured, constvars.ErrDevInvalidInput)
	}

	targetDate, err := utils.ParseDateISO(request.Date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	existing, err := uc.AppointmentRepository.FindByDoctorAndDate(ctx, tenantID, request.DoctorID, request.Date)
	if err != nil {
		return nil, err
	}

	today := utils.TruncateToDate(time.Now())
	result := availability.ComputeAvailability(schedule, existing, targetDate, today, source == constvars.AppointmentSourceOnline)
	if result.Message == constvars.MsgFullyBooked {
		return nil, exceptions.ErrSlotNoLongerAvailable(nil)
	}
	if result.Message != "" {
		return nil, exceptions.BuildNewCustomError(nil, constvars.StatusBadRequest,
			result.Message, constvars.ErrDevInvalidInput)
	}
	if !containsSlot(result.AvailableSlots, request.StartTime) {
		return nil, exceptions.ErrSlotNoLongerAvailable(nil)
	}

	// Re-count right before the insert to narrow the race between two
	// bookings of the last seat in a slot.
	count, err := uc.AppointmentRepository.CountAtSlot(ctx, tenantID, request.DoctorID, request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	if count >= int64(schedule.MaxPatientsPerSlot) {
		return nil, exceptions.ErrSlotNoLongerAvailable(nil)
	}

	startMinutes, err := utils.ClockTimeToMinutes(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	endTime := utils.MinutesToClockTime(startMinutes + schedule.SlotDurationMinutes)

	now := time.Now()
	appointment := &models.Appointment{
		TenantID:        tenantID,
		DoctorID:        request.DoctorID,
		PatientID:       request.PatientID,
		Date:            request.Date,
		StartTime:       request.StartTime,
		EndTime:         endTime,
		DurationMinutes: schedule.SlotDurationMinutes,
		Status:          constvars.AppointmentStatusScheduled,
		Source:          source,
		Reason:          request.Reason,
	}
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}

	err = uc.NotificationPublisher.PublishAppointmentBooked(ctx, &contracts.AppointmentNotification{
		TenantID:    tenantID,
		PatientName: patient.FullName,
		DoctorName:  doctor.FullName,
		Date:        request.Date,
		StartTime:   request.StartTime,
		Source:      source,
	})
	if err != nil {
		uc.Log.Warn("appointmentUsecase.BookAppointment failed to publish notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	appointment.ID = appointmentID
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointmentByID(ctx context.Context, tenantID, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}
	return buildAppointmentResponse(appointment), nil
}

func (uc *appointmentUsecase) GetAppointments(ctx context.Context, tenantID string, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error) {
	appointments, total, err := uc.AppointmentRepository.FindAll(ctx, tenantID, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		results = append(results, *buildAppointmentResponse(&appointments[i]))
	}
	return results, total, nil
}

func (uc *appointmentUsecase) UpdateAppointmentStatus(ctx context.Context, tenantID, appointmentID, status string) error {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, tenantID, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}

	if !isTransitionAllowed(appointment.Status, status) {
		return exceptions.ErrInvalidStatusTransition(
			fmt.Errorf("cannot move appointment from %s to %s", appointment.Status, status))
	}

	return uc.AppointmentRepository.UpdateStatus(ctx, tenantID, appointmentID, status)
}

func isTransitionAllowed(current, next string) bool {
	for _, allowed := range allowedStatusTransitions[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

func containsSlot(slots []string, startTime string) bool {
	for _, slot := range slots {
		if slot == startTime {
			return true
		}
	}
	return false
}

func buildAppointmentResponse(appointment *models.Appointment) *responses.Appointment {
	return &responses.Appointment{
		ID:              appointment.ID,
		DoctorID:        appointment.DoctorID,
		PatientID:       appointment.PatientID,
		Date:            appointment.Date,
		StartTime:       appointment.StartTime,
		EndTime:         appointment.EndTime,
		DurationMinutes: appointment.DurationMinutes,
		Status:          appointment.Status,
		Source:          appointment.Source,
		Reason:          appointment.Reason,
	}
}

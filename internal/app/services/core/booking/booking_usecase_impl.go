package booking

import (
	"context"
	"strings"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	DoctorRepository    contracts.DoctorRepository
	ScheduleRepository  contracts.ScheduleRepository
	PatientRepository   contracts.PatientRepository
	AvailabilityUsecase contracts.AvailabilityUsecase
	AppointmentUsecase  contracts.AppointmentUsecase
	Log                 *zap.Logger
}

func NewBookingUsecase(
	doctorRepository contracts.DoctorRepository,
	scheduleRepository contracts.ScheduleRepository,
	patientRepository contracts.PatientRepository,
	availabilityUsecase contracts.AvailabilityUsecase,
	appointmentUsecase contracts.AppointmentUsecase,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		DoctorRepository:    doctorRepository,
		ScheduleRepository:  scheduleRepository,
		PatientRepository:   patientRepository,
		AvailabilityUsecase: availabilityUsecase,
		AppointmentUsecase:  appointmentUsecase,
		Log:                 logger,
	}
}

// GetBookableDoctors lists active doctors whose schedule accepts online
// bookings. Doctors without a schedule never show up on the booking page.
func (uc *bookingUsecase) GetBookableDoctors(ctx context.Context, tenantID string) ([]responses.PublicDoctor, error) {
	doctors, _, err := uc.DoctorRepository.FindAll(ctx, tenantID, true, 1, 200)
	if err != nil {
		return nil, err
	}

	results := make([]responses.PublicDoctor, 0, len(doctors))
	for _, doctor := range doctors {
		schedule, err := uc.ScheduleRepository.FindByDoctorID(ctx, tenantID, doctor.ID)
		if err != nil {
			return nil, err
		}
		if schedule == nil || !schedule.IsAcceptingAppointments || !schedule.AcceptsOnlineBooking {
			continue
		}
		results = append(results, responses.PublicDoctor{
			ID:             doctor.ID,
			FullName:       doctor.FullName,
			Specialization: doctor.Specialization,
		})
	}
	return results, nil
}

func (uc *bookingUsecase) GetPublicAvailability(ctx context.Context, tenantID, doctorID, date string) (*responses.Availability, error) {
	return uc.AvailabilityUsecase.GetAvailability(ctx, tenantID, doctorID, date, true)
}

// BookPublicAppointment matches the caller to an existing patient by phone
// number, creating a minimal record when none exists, then books with the
// online source so the booking window rules for public callers apply.
func (uc *bookingUsecase) BookPublicAppointment(ctx context.Context, tenantID string, request *requests.BookPublicAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.BookPublicAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	patient, err := uc.PatientRepository.FindByPhoneNumber(ctx, tenantID, request.PhoneNumber)
	if err != nil {
		return nil, err
	}

	patientID := ""
	if patient != nil {
		patientID = patient.ID
	} else {
		now := time.Now()
		newPatient := &models.Patient{
			TenantID:    tenantID,
			FullName:    strings.TrimSpace(request.FullName),
			PhoneNumber: request.PhoneNumber,
			Email:       strings.ToLower(strings.TrimSpace(request.Email)),
		}
		newPatient.CreatedAt = now
		newPatient.UpdatedAt = now

		patientID, err = uc.PatientRepository.CreatePatient(ctx, newPatient)
		if err != nil {
			return nil, err
		}
	}

	bookRequest := &requests.BookAppointment{
		DoctorID:  request.DoctorID,
		PatientID: patientID,
		Date:      request.Date,
		StartTime: request.StartTime,
		Reason:    request.Reason,
	}
	return uc.AppointmentUsecase.BookAppointment(ctx, tenantID, bookRequest, constvars.AppointmentSourceOnline)
}

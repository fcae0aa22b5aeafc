package availability

import (
	"context"
	"testing"
	"time"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubScheduleRepository struct {
	schedule *models.DoctorSchedule
	err      error
}

func (s *stubScheduleRepository) UpsertSchedule(ctx context.Context, schedule *models.DoctorSchedule) error {
	return nil
}

func (s *stubScheduleRepository) FindByDoctorID(ctx context.Context, tenantID, doctorID string) (*models.DoctorSchedule, error) {
	return s.schedule, s.err
}

type stubAppointmentRepository struct {
	appointments []models.Appointment
}

func (s *stubAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (s *stubAppointmentRepository) FindByID(ctx context.Context, tenantID, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentRepository) FindByDoctorAndDate(ctx context.Context, tenantID, doctorID, date string) ([]models.Appointment, error) {
	return s.appointments, nil
}

func (s *stubAppointmentRepository) FindAll(ctx context.Context, tenantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	return nil, 0, nil
}

func (s *stubAppointmentRepository) CountAtSlot(ctx context.Context, tenantID, doctorID, date, startTime string) (int64, error) {
	return 0, nil
}

func (s *stubAppointmentRepository) UpdateStatus(ctx context.Context, tenantID, appointmentID, status string) error {
	return nil
}

type stubRedisRepository struct {
	store map[string]string
}

func newStubRedisRepository() *stubRedisRepository {
	return &stubRedisRepository{store: map[string]string{}}
}

func (s *stubRedisRepository) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	return nil
}

func (s *stubRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, nil
}

func (s *stubRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (s *stubRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return s.store[key], nil
}

func (s *stubRedisRepository) Delete(ctx context.Context, key string) error {
	delete(s.store, key)
	return nil
}

func futureWorkingDate(t *testing.T) string {
	t.Helper()
	// Next Monday at least one day out, so window validation passes with the
	// default schedule fixture.
	date := time.Now().AddDate(0, 0, 1)
	for date.Weekday() != time.Monday {
		date = date.AddDate(0, 0, 1)
	}
	return date.Format(constvars.DateLayoutISO)
}

func TestGetAvailability(t *testing.T) {
	logger := zap.NewNop()

	t.Run("No Schedule Configured Returns Consistent Fallback", func(t *testing.T) {
		usecase := NewAvailabilityUsecase(&stubScheduleRepository{}, &stubAppointmentRepository{}, newStubRedisRepository(), logger)

		for _, publicBooking := range []bool{false, true} {
			result, err := usecase.GetAvailability(context.Background(), "tenant-1", "doctor-1", futureWorkingDate(t), publicBooking)
			assert.NoError(t, err)
			assert.Empty(t, result.AvailableSlots)
			assert.Equal(t, constvars.MsgNoScheduleConfigured, result.Message)
		}
	})

	t.Run("Malformed Date Rejected Before Resolution", func(t *testing.T) {
		usecase := NewAvailabilityUsecase(&stubScheduleRepository{schedule: buildSchedule()}, &stubAppointmentRepository{}, newStubRedisRepository(), logger)

		_, err := usecase.GetAvailability(context.Background(), "tenant-1", "doctor-1", "07-09-2026", false)
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Booked Slots Are Excluded", func(t *testing.T) {
		date := futureWorkingDate(t)
		appointments := []models.Appointment{
			{Date: date, StartTime: "09:00", Status: constvars.AppointmentStatusScheduled},
		}
		usecase := NewAvailabilityUsecase(
			&stubScheduleRepository{schedule: buildSchedule()},
			&stubAppointmentRepository{appointments: appointments},
			newStubRedisRepository(),
			logger,
		)

		result, err := usecase.GetAvailability(context.Background(), "tenant-1", "doctor-1", date, false)
		assert.NoError(t, err)
		assert.NotContains(t, result.AvailableSlots, "09:00")
		assert.Contains(t, result.AvailableSlots, "09:30")
	})
}

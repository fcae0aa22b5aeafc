package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, tenantID, appointmentID string) (*models.Appointment, error)
	FindByDoctorAndDate(ctx context.Context, tenantID, doctorID, date string) ([]models.Appointment, error)
	FindAll(ctx context.Context, tenantID string, filter *requests.AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error)
	CountAtSlot(ctx context.Context, tenantID, doctorID, date, startTime string) (int64, error)
	UpdateStatus(ctx context.Context, tenantID, appointmentID, status string) error
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, tenantID string, request *requests.BookAppointment, source string) (*responses.Appointment, error)
	GetAppointmentByID(ctx context.Context, tenantID, appointmentID string) (*responses.Appointment, error)
	GetAppointments(ctx context.Context, tenantID string, filter *requests.AppointmentFilter, pagination *requests.Pagination) ([]responses.Appointment, int, error)
	UpdateAppointmentStatus(ctx context.Context, tenantID, appointmentID, status string) error
}

package contracts

import (
	"context"

	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

// BookingUsecase backs the unauthenticated booking page. Every method is
// scoped by the tenant already resolved from the booking slug.
type BookingUsecase interface {
	GetBookableDoctors(ctx context.Context, tenantID string) ([]responses.PublicDoctor, error)
	GetPublicAvailability(ctx context.Context, tenantID, doctorID, date string) (*responses.Availability, error)
	BookPublicAppointment(ctx context.Context, tenantID string, request *requests.BookPublicAppointment) (*responses.Appointment, error)
}

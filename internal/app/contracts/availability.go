package contracts

import (
	"context"

	"clinicstack-service/internal/pkg/dto/responses"
)

type AvailabilityUsecase interface {
	// GetAvailability computes bookable slot start times for a doctor on a
	// date. publicBooking toggles the online-booking check applied to
	// unauthenticated callers.
	GetAvailability(ctx context.Context, tenantID, doctorID, date string, publicBooking bool) (*responses.Availability, error)
}

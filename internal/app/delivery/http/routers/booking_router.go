package routers

import (
	"clinicstack-service/internal/app/services/core/booking"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *booking.BookingController) {
	router.Get("/", bookingController.GetClinicInfo)
	router.Get("/doctors", bookingController.GetBookableDoctors)
	router.Get("/availability", bookingController.GetAvailability)
	router.Post("/appointments", bookingController.BookAppointment)
}

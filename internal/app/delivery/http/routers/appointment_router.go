package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", appointmentController.BookAppointment)
	router.Get("/", appointmentController.GetAppointments)
	router.Get("/{appointmentID}", appointmentController.GetAppointmentByID)
	router.Patch("/{appointmentID}/status", appointmentController.UpdateAppointmentStatus)
}

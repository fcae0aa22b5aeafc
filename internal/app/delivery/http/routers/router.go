package routers

import (
	"fmt"
	"time"

	"clinicstack-service/internal/app/config"
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/appointments"
	"clinicstack-service/internal/app/services/core/auth"
	"clinicstack-service/internal/app/services/core/availability"
	"clinicstack-service/internal/app/services/core/booking"
	"clinicstack-service/internal/app/services/core/doctors"
	"clinicstack-service/internal/app/services/core/documents"
	"clinicstack-service/internal/app/services/core/inventory"
	"clinicstack-service/internal/app/services/core/invoices"
	"clinicstack-service/internal/app/services/core/patients"
	"clinicstack-service/internal/app/services/core/prescriptions"
	"clinicstack-service/internal/app/services/core/reports"
	"clinicstack-service/internal/app/services/core/schedules"
	"clinicstack-service/internal/app/services/core/taxes"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Auth         *auth.AuthController
	Patient      *patients.PatientController
	Doctor       *doctors.DoctorController
	Schedule     *schedules.ScheduleController
	Availability *availability.AvailabilityController
	Appointment  *appointments.AppointmentController
	Prescription *prescriptions.PrescriptionController
	Inventory    *inventory.InventoryController
	Invoice      *invoices.InvoiceController
	Tax          *taxes.TaxConfigController
	Report       *reports.ReportController
	Document     *documents.DocumentController
	Booking      *booking.BookingController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, controllers.Auth)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, controllers)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, controllers)
			})

			r.Route("/availability", func(r chi.Router) {
				attachAvailabilityRoutes(r, middlewares, controllers.Availability)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, controllers.Appointment)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, controllers.Prescription)
			})

			r.Route("/inventory", func(r chi.Router) {
				attachInventoryRoutes(r, middlewares, controllers.Inventory)
			})

			r.Route("/invoices", func(r chi.Router) {
				attachInvoiceRoutes(r, middlewares, controllers.Invoice)
			})

			r.Route("/taxes", func(r chi.Router) {
				attachTaxRoutes(r, middlewares, controllers.Tax)
			})

			r.Route("/documents", func(r chi.Router) {
				attachDocumentRoutes(r, middlewares, controllers.Document)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, controllers.Report)
			})

			r.Route("/booking/{bookingSlug}", func(r chi.Router) {
				// Unauthenticated surface gets its own tighter limit.
				r.Use(httprate.LimitByIP(internalConfig.App.PublicMaxRequests, time.Second))
				attachBookingRoutes(r, controllers.Booking)
			})
		})
	})
}

package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/availability"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *availability.AvailabilityController) {
	router.Use(middlewares.Authenticate)

	router.Get("/", availabilityController.GetAvailability)
}

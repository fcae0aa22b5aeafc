package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Post("/", controllers.Doctor.CreateDoctor)
	router.Get("/", controllers.Doctor.GetDoctors)
	router.Get("/{doctorID}", controllers.Doctor.GetDoctorByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Put("/{doctorID}", controllers.Doctor.UpdateDoctor)

	router.Get("/{doctorID}/schedule", controllers.Schedule.GetSchedule)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleDoctor)).
		Put("/{doctorID}/schedule", controllers.Schedule.UpsertSchedule)
}

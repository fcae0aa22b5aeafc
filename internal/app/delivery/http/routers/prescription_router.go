package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/prescriptions"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *prescriptions.PrescriptionController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Post("/", prescriptionController.CreatePrescription)
	router.Get("/{prescriptionID}", prescriptionController.GetPrescriptionByID)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin, constvars.RoleReceptionist)).
		Post("/{prescriptionID}/dispense", prescriptionController.DispensePrescription)
}

package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/taxes"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachTaxRoutes(router chi.Router, middlewares *middlewares.Middlewares, taxController *taxes.TaxConfigController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Post("/", taxController.CreateTaxConfig)
	router.Get("/", taxController.GetTaxConfigs)
	router.Put("/{taxConfigID}", taxController.UpdateTaxConfig)
	router.Delete("/{taxConfigID}", taxController.DeleteTaxConfig)
}

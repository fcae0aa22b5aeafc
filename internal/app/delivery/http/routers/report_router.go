package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/reports"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.Use(middlewares.Authenticate)
	router.Use(middlewares.RequireRoles(constvars.RoleAdmin))

	router.Get("/appointments", reportController.GetAppointmentReport)
	router.Get("/revenue", reportController.GetRevenueReport)
	router.Get("/inventory", reportController.GetInventoryReport)
}

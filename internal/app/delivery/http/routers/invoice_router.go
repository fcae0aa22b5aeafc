package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/invoices"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInvoiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, invoiceController *invoices.InvoiceController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", invoiceController.CreateInvoice)
	router.Get("/", invoiceController.GetInvoices)
	router.Get("/{invoiceID}", invoiceController.GetInvoiceByID)
	router.Post("/{invoiceID}/issue", invoiceController.IssueInvoice)
	router.Post("/{invoiceID}/pay", invoiceController.PayInvoice)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Post("/{invoiceID}/void", invoiceController.VoidInvoice)
}

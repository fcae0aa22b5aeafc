package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/documents"

	"github.com/go-chi/chi/v5"
)

func attachDocumentRoutes(router chi.Router, middlewares *middlewares.Middlewares, documentController *documents.DocumentController) {
	router.Use(middlewares.Authenticate)

	router.Get("/{documentID}/url", documentController.GetDownloadURL)
}

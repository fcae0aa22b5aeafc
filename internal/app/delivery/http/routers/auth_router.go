package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Get("/me", authController.Me)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}

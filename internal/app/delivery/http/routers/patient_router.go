package routers

import (
	"clinicstack-service/internal/app/delivery/http/middlewares"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, controllers *Controllers) {
	router.Use(middlewares.Authenticate)

	router.Post("/", controllers.Patient.CreatePatient)
	router.Get("/", controllers.Patient.GetPatients)
	router.Get("/{patientID}", controllers.Patient.GetPatientByID)
	router.Put("/{patientID}", controllers.Patient.UpdatePatient)
	router.With(middlewares.RequireRoles(constvars.RoleAdmin)).Delete("/{patientID}", controllers.Patient.DeletePatient)

	router.Get("/{patientID}/prescriptions", controllers.Prescription.GetPrescriptionsByPatient)

	router.Post("/{patientID}/documents", controllers.Document.UploadDocument)
	router.Get("/{patientID}/documents", controllers.Document.GetDocuments)
}

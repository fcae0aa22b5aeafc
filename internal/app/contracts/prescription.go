package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type PrescriptionRepository interface {
	CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error)
	FindByID(ctx context.Context, tenantID, prescriptionID string) (*models.Prescription, error)
	FindByPatientID(ctx context.Context, tenantID, patientID string, page, pageSize int) ([]models.Prescription, int, error)
	MarkDispensed(ctx context.Context, tenantID, prescriptionID string) error
}

type PrescriptionUsecase interface {
	CreatePrescription(ctx context.Context, tenantID, doctorID string, request *requests.CreatePrescription) (string, error)
	GetPrescriptionByID(ctx context.Context, tenantID, prescriptionID string) (*responses.Prescription, error)
	GetPrescriptionsByPatient(ctx context.Context, tenantID, patientID string, pagination *requests.Pagination) ([]responses.Prescription, int, error)
	DispensePrescription(ctx context.Context, tenantID, prescriptionID string) error
}

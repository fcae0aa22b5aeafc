package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, tenantID, patientID string) (*models.Patient, error)
	FindByPhoneNumber(ctx context.Context, tenantID, phoneNumber string) (*models.Patient, error)
	FindAll(ctx context.Context, tenantID, search string, page, pageSize int) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, tenantID, patientID string) error
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, tenantID string, request *requests.CreatePatient) (string, error)
	GetPatientByID(ctx context.Context, tenantID, patientID string) (*responses.Patient, error)
	GetPatients(ctx context.Context, tenantID string, pagination *requests.Pagination, search string) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, tenantID, patientID string, request *requests.UpdatePatient) error
	DeletePatient(ctx context.Context, tenantID, patientID string) error
}

package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/responses"
)

type PatientDocumentRepository interface {
	CreateDocument(ctx context.Context, document *models.PatientDocument) (string, error)
	FindByPatientID(ctx context.Context, tenantID, patientID string) ([]models.PatientDocument, error)
	FindByID(ctx context.Context, tenantID, documentID string) (*models.PatientDocument, error)
}

type DocumentUsecase interface {
	UploadDocument(ctx context.Context, tenantID, patientID, uploadedBy string, upload *models.DocumentUpload) (string, error)
	GetDocuments(ctx context.Context, tenantID, patientID string) ([]responses.PatientDocument, error)
	GetDownloadURL(ctx context.Context, tenantID, documentID string) (string, error)
}

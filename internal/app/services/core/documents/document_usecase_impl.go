package documents

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type documentUsecase struct {
	DocumentRepository      contracts.PatientDocumentRepository
	PatientRepository       contracts.PatientRepository
	StorageRepository       contracts.StorageRepository
	PresignedURLExpiryHours int
	Log                     *zap.Logger
}

func NewDocumentUsecase(
	documentRepository contracts.PatientDocumentRepository,
	patientRepository contracts.PatientRepository,
	storageRepository contracts.StorageRepository,
	presignedURLExpiryHours int,
	logger *zap.Logger,
) contracts.DocumentUsecase {
	return &documentUsecase{
		DocumentRepository:      documentRepository,
		PatientRepository:       patientRepository,
		StorageRepository:       storageRepository,
		PresignedURLExpiryHours: presignedURLExpiryHours,
		Log:                     logger,
	}
}

func (uc *documentUsecase) UploadDocument(ctx context.Context, tenantID, patientID, uploadedBy string, upload *models.DocumentUpload) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("documentUsecase.UploadDocument called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
		zap.String("file_name", upload.FileName),
		zap.Int64("size_bytes", upload.SizeBytes),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", exceptions.ErrPatientNotFound(nil)
	}

	objectName := utils.GenerateObjectName(tenantID, patientID, upload.FileName)
	err = uc.StorageRepository.Upload(ctx, objectName, upload.ContentType, upload.Reader, upload.SizeBytes)
	if err != nil {
		return "", err
	}

	now := time.Now()
	document := &models.PatientDocument{
		TenantID:    tenantID,
		PatientID:   patientID,
		FileName:    upload.FileName,
		ObjectName:  objectName,
		ContentType: upload.ContentType,
		SizeBytes:   upload.SizeBytes,
		UploadedBy:  uploadedBy,
	}
	document.CreatedAt = now
	document.UpdatedAt = now

	return uc.DocumentRepository.CreateDocument(ctx, document)
}

func (uc *documentUsecase) GetDocuments(ctx context.Context, tenantID, patientID string) ([]responses.PatientDocument, error) {
	documents, err := uc.DocumentRepository.FindByPatientID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}

	results := make([]responses.PatientDocument, 0, len(documents))
	for _, document := range documents {
		results = append(results, responses.PatientDocument{
			ID:          document.ID,
			FileName:    document.FileName,
			ContentType: document.ContentType,
			SizeBytes:   document.SizeBytes,
			UploadedBy:  document.UploadedBy,
			UploadedAt:  document.CreatedAt,
		})
	}
	return results, nil
}

func (uc *documentUsecase) GetDownloadURL(ctx context.Context, tenantID, documentID string) (string, error) {
	document, err := uc.DocumentRepository.FindByID(ctx, tenantID, documentID)
	if err != nil {
		return "", err
	}
	if document == nil {
		return "", exceptions.ErrDataNotFound(nil)
	}

	expiry := time.Duration(uc.PresignedURLExpiryHours) * time.Hour
	return uc.StorageRepository.PresignedGetURL(ctx, document.ObjectName, expiry)
}

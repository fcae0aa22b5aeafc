package patients

import (
	"context"
	"time"

	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		Log:               logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, tenantID string, request *requests.CreatePatient) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	now := time.Now()
	patient := &models.Patient{
		TenantID:       tenantID,
		FullName:       request.FullName,
		Email:          request.Email,
		PhoneNumber:    request.PhoneNumber,
		DateOfBirth:    request.DateOfBirth,
		Gender:         request.Gender,
		BloodGroup:     request.BloodGroup,
		Address:        request.Address,
		Allergies:      request.Allergies,
		MedicalHistory: request.MedicalHistory,
	}
	patient.CreatedAt = now
	patient.UpdatedAt = now

	return uc.PatientRepository.CreatePatient(ctx, patient)
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, tenantID, patientID string) (*responses.Patient, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) GetPatients(ctx context.Context, tenantID string, pagination *requests.Pagination, search string) ([]responses.Patient, int, error) {
	patients, total, err := uc.PatientRepository.FindAll(ctx, tenantID, search, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		results = append(results, *buildPatientResponse(&patients[i]))
	}
	return results, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, tenantID, patientID string, request *requests.UpdatePatient) error {
	patient, err := uc.PatientRepository.FindByID(ctx, tenantID, patientID)
	if err != nil {
		return err
	}
	if patient == nil {
		return exceptions.ErrPatientNotFound(nil)
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	if request.PhoneNumber != "" {
		patient.PhoneNumber = request.PhoneNumber
	}
	if request.DateOfBirth != "" {
		patient.DateOfBirth = request.DateOfBirth
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.BloodGroup != "" {
		patient.BloodGroup = request.BloodGroup
	}
	if request.Address != "" {
		patient.Address = request.Address
	}
	if request.Allergies != nil {
		patient.Allergies = request.Allergies
	}
	if request.MedicalHistory != "" {
		patient.MedicalHistory = request.MedicalHistory
	}
	patient.UpdatedAt = time.Now()

	return uc.PatientRepository.UpdatePatient(ctx, patient)
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, tenantID, patientID string) error {
	return uc.PatientRepository.DeletePatient(ctx, tenantID, patientID)
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		ID:             patient.ID,
		FullName:       patient.FullName,
		Email:          patient.Email,
		PhoneNumber:    patient.PhoneNumber,
		DateOfBirth:    patient.DateOfBirth,
		Gender:         patient.Gender,
		BloodGroup:     patient.BloodGroup,
		Address:        patient.Address,
		Allergies:      patient.Allergies,
		MedicalHistory: patient.MedicalHistory,
	}
}

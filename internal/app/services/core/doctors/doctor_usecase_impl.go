package doctors

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

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	Log              *zap.Logger
}

func NewDoctorUsecase(doctorRepository contracts.DoctorRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, tenantID string, request *requests.CreateDoctor) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, tenantID),
	)

	now := time.Now()
	doctor := &models.Doctor{
		TenantID:        tenantID,
		FullName:        request.FullName,
		Specialization:  request.Specialization,
		Qualification:   request.Qualification,
		Email:           request.Email,
		PhoneNumber:     request.PhoneNumber,
		ConsultationFee: request.ConsultationFee,
		IsActive:        true,
	}
	doctor.CreatedAt = now
	doctor.UpdatedAt = now

	return uc.DoctorRepository.CreateDoctor(ctx, doctor)
}

func (uc *doctorUsecase) GetDoctorByID(ctx context.Context, tenantID, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, tenantID, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return buildDoctorResponse(doctor), nil
}

func (uc *doctorUsecase) GetDoctors(ctx context.Context, tenantID string, pagination *requests.Pagination) ([]responses.Doctor, int, error) {
	doctors, total, err := uc.DoctorRepository.FindAll(ctx, tenantID, false, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	results := make([]responses.Doctor, 0, len(doctors))
	for i := range doctors {
		results = append(results, *buildDoctorResponse(&doctors[i]))
	}
	return results, total, nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, tenantID, doctorID string, request *requests.UpdateDoctor) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, tenantID, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	if request.FullName != "" {
		doctor.FullName = request.FullName
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Qualification != "" {
		doctor.Qualification = request.Qualification
	}
	if request.Email != "" {
		doctor.Email = request.Email
	}
	if request.PhoneNumber != "" {
		doctor.PhoneNumber = request.PhoneNumber
	}
	if request.ConsultationFee != nil {
		doctor.ConsultationFee = *request.ConsultationFee
	}
	if request.IsActive != nil {
		doctor.IsActive = *request.IsActive
	}
	doctor.UpdatedAt = time.Now()

	return uc.DoctorRepository.UpdateDoctor(ctx, doctor)
}

func buildDoctorResponse(doctor *models.Doctor) *responses.Doctor {
	return &responses.Doctor{
		ID:              doctor.ID,
		FullName:        doctor.FullName,
		Specialization:  doctor.Specialization,
		Qualification:   doctor.Qualification,
		Email:           doctor.Email,
		PhoneNumber:     doctor.PhoneNumber,
		ConsultationFee: doctor.ConsultationFee,
		IsActive:        doctor.IsActive,
	}
}

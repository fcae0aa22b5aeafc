package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindByID(ctx context.Context, tenantID, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context, tenantID string, onlyActive bool, page, pageSize int) ([]models.Doctor, int, error)
	UpdateDoctor(ctx context.Context, doctor *models.Doctor) error
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, tenantID string, request *requests.CreateDoctor) (string, error)
	GetDoctorByID(ctx context.Context, tenantID, doctorID string) (*responses.Doctor, error)
	GetDoctors(ctx context.Context, tenantID string, pagination *requests.Pagination) ([]responses.Doctor, int, error)
	UpdateDoctor(ctx context.Context, tenantID, doctorID string, request *requests.UpdateDoctor) error
}

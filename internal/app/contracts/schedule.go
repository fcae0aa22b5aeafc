package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type ScheduleRepository interface {
	UpsertSchedule(ctx context.Context, schedule *models.DoctorSchedule) error
	FindByDoctorID(ctx context.Context, tenantID, doctorID string) (*models.DoctorSchedule, error)
}

type ScheduleUsecase interface {
	UpsertSchedule(ctx context.Context, tenantID, doctorID string, request *requests.UpsertDoctorSchedule) error
	GetScheduleByDoctorID(ctx context.Context, tenantID, doctorID string) (*responses.DoctorSchedule, error)
}

package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, sessionID string) error
	GetSessionData(ctx context.Context, sessionID string) (*models.Session, error)
	GetProfile(ctx context.Context, tenantID, userID string) (*responses.Profile, error)
}

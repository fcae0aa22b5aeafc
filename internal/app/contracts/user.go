package contracts

import (
	"context"

	"clinicstack-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, tenantID, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

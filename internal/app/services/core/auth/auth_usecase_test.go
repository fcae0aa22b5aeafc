package auth

import (
	"context"
	"testing"
	"time"

	"clinicstack-service/internal/app/config"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubUserRepository struct {
	user *models.User
	err  error
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubUserRepository) FindByID(ctx context.Context, tenantID, userID string) (*models.User, error) {
	return s.user, s.err
}

func (s *stubUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.user, s.err
}

type stubSessionStore struct {
	session *models.Session
}

func (s *stubSessionStore) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	s.session = session
	return nil
}

func (s *stubSessionStore) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return s.session, nil
}

func (s *stubSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.session = nil
	return nil
}

func (s *stubSessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (s *stubSessionStore) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (s *stubSessionStore) Delete(ctx context.Context, key string) error {
	return nil
}

func testInternalConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.App.SessionExpiredTimeInHours = 24
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 24
	return cfg
}

func TestGetProfile(t *testing.T) {
	activeUser := &models.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		Email:    "reception@clinic.test",
		FullName: "Front Desk",
		Role:     constvars.RoleReceptionist,
		IsActive: true,
	}

	t.Run("Returns Profile For Active User", func(t *testing.T) {
		usecase := NewAuthUsecase(&stubUserRepository{user: activeUser}, &stubSessionStore{}, testInternalConfig(), zap.NewNop())

		profile, err := usecase.GetProfile(context.Background(), "tenant-1", "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", profile.UserID)
		assert.Equal(t, "reception@clinic.test", profile.Email)
		assert.Equal(t, constvars.RoleReceptionist, profile.Role)
		assert.Equal(t, "tenant-1", profile.TenantID)
	})

	t.Run("Missing User Invalidates Session", func(t *testing.T) {
		usecase := NewAuthUsecase(&stubUserRepository{}, &stubSessionStore{}, testInternalConfig(), zap.NewNop())

		_, err := usecase.GetProfile(context.Background(), "tenant-1", "gone")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Deactivated User Invalidates Session", func(t *testing.T) {
		inactive := *activeUser
		inactive.IsActive = false
		usecase := NewAuthUsecase(&stubUserRepository{user: &inactive}, &stubSessionStore{}, testInternalConfig(), zap.NewNop())

		_, err := usecase.GetProfile(context.Background(), "tenant-1", "user-1")

		assert.Error(t, err)
	})
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	user := &models.User{
		ID:       "user-1",
		TenantID: "tenant-1",
		Email:    "reception@clinic.test",
		Password: "$2a$10$definitelynotthehashofhunter2aaaaaaaaaaaaaaaaaaaaaaaa",
		IsActive: true,
	}
	usecase := NewAuthUsecase(&stubUserRepository{user: user}, &stubSessionStore{}, testInternalConfig(), zap.NewNop())

	_, err := usecase.Login(context.Background(), &requests.Login{Email: "reception@clinic.test", Password: "hunter2"})

	assert.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
}

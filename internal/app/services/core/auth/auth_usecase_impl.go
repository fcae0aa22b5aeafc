package auth

import (
	"context"
	"time"

	"clinicstack-service/internal/app/config"
	"clinicstack-service/internal/app/contracts"
	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/dto/requests"
	"clinicstack-service/internal/pkg/dto/responses"
	"clinicstack-service/internal/pkg/exceptions"
	"clinicstack-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository  contracts.UserRepository
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:  userRepository,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
		Log:             logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		TenantID:  user.TenantID,
		Email:     user.Email,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
	}

	sessionTTL := time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	err = uc.RedisRepository.CreateSession(ctx, session, sessionTTL)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.Login{
		Token:    token,
		FullName: user.FullName,
		Role:     user.Role,
		TenantID: user.TenantID,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) GetProfile(ctx context.Context, tenantID, userID string) (*responses.Profile, error) {
	user, err := uc.UserRepository.FindByID(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		// The session outlived the account; treat it as no longer valid.
		return nil, exceptions.ErrSessionInvalid(nil)
	}

	return &responses.Profile{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		TenantID: user.TenantID,
		DoctorID: user.DoctorID,
	}, nil
}

func (uc *authUsecase) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	session, err := uc.RedisRepository.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	return session, nil
}

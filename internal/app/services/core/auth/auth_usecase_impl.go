package auth

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/app/services/core/permissions"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	BackendAuthClient  contracts.BackendAuthClient
	SessionService     contracts.SessionService
	PermissionUsecase  permissions.PermissionUsecase
	ActivityLogUsecase activitylogs.ActivityLogUsecase
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAuthUsecase(
	backendAuthClient contracts.BackendAuthClient,
	sessionService contracts.SessionService,
	permissionUsecase permissions.PermissionUsecase,
	activityLogUsecase activitylogs.ActivityLogUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		BackendAuthClient:  backendAuthClient,
		SessionService:     sessionService,
		PermissionUsecase:  permissionUsecase,
		ActivityLogUsecase: activityLogUsecase,
		InternalConfig:     internalConfig,
		Log:                logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	user, backendToken, err := uc.BackendAuthClient.Login(ctx, request.Email, request.Password)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID:    utils.GenerateSessionID(),
		BackendToken: backendToken,
		User:         user,
		ExpiresAt:    time.Now().Add(time.Duration(uc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour),
	}

	err = uc.SessionService.StoreSession(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	// Warm the capability set so the first guarded navigation does not pay
	// the backend round trip. A degraded result is fine here.
	_, err = uc.PermissionUsecase.Load(ctx, session)
	if err != nil {
		uc.Log.Warn("failed to preload permissions at login",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}

	uc.ActivityLogUsecase.Record(ctx, &models.ActivityLog{
		Actor:      user.ID,
		ActorEmail: user.Email,
		ClinicID:   user.ClinicID,
		Action:     constvars.ActivityActionLogin,
	})

	return &responses.Login{
		Token: token,
		User:  utils.BuildUserProfileResponse(user),
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	if !session.IsAuthenticated() {
		return exceptions.ErrNotAuthenticated(nil)
	}

	err := uc.BackendAuthClient.Logout(ctx, session.BackendToken)
	if err != nil {
		uc.Log.Warn("backend logout failed, clearing local session anyway",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		return err
	}

	err = uc.PermissionUsecase.Invalidate(ctx, session.SessionID)
	if err != nil {
		uc.Log.Warn("failed to invalidate resolver snapshot",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}

	uc.ActivityLogUsecase.Record(ctx, &models.ActivityLog{
		Actor:      session.User.ID,
		ActorEmail: session.User.Email,
		ClinicID:   session.User.ClinicID,
		Action:     constvars.ActivityActionLogout,
	})

	return nil
}

func (uc *authUsecase) CurrentUser(ctx context.Context, session *models.Session) (*responses.UserProfile, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}

	user, err := uc.BackendAuthClient.CurrentUser(ctx, session.BackendToken)
	if err != nil {
		return nil, err
	}

	// Replace the snapshot wholesale; the session ID and token stay as they
	// are so the browser's JWT remains valid.
	session.User = user
	err = uc.SessionService.StoreSession(ctx, session)
	if err != nil {
		return nil, err
	}

	return utils.BuildUserProfileResponse(user), nil
}

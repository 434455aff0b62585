package middlewares

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/services/core/permissions"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService    contracts.SessionService
	PermissionUsecase permissions.PermissionUsecase
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewMiddlewares(
	sessionService contracts.SessionService,
	permissionUsecase permissions.PermissionUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *Middlewares {
	return &Middlewares{
		SessionService:    sessionService,
		PermissionUsecase: permissionUsecase,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

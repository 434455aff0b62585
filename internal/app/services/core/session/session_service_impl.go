package session

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.RedisKeySessionPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionNotFound(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) StoreSession(ctx context.Context, session *models.Session) error {
	expiry := time.Duration(svc.InternalConfig.App.LoginSessionExpiredTimeInHours) * time.Hour
	return svc.RedisRepository.Set(ctx, constvars.RedisKeySessionPrefix+session.SessionID, session, expiry)
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.RedisKeySessionPrefix+sessionID)
}

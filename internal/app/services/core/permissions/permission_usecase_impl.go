package permissions

import (
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type permissionUsecase struct {
	PermissionClient contracts.PermissionClient
	RedisRepository  contracts.RedisRepository
	Log              *zap.Logger
	CacheExpiry      time.Duration
}

func NewPermissionUsecase(
	permissionClient contracts.PermissionClient,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	cacheExpiry time.Duration,
) PermissionUsecase {
	return &permissionUsecase{
		PermissionClient: permissionClient,
		RedisRepository:  redisRepository,
		Log:              logger,
		CacheExpiry:      cacheExpiry,
	}
}

func (uc *permissionUsecase) Load(ctx context.Context, session *models.Session) (*Resolver, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPermissionsPrefix+session.SessionID)
	if err == nil && cached != "" {
		var snapshot resolverSnapshot
		if err := json.Unmarshal([]byte(cached), &snapshot); err == nil {
			resolver := fromSnapshot(snapshot)
			if resolver.Ready() {
				return resolver, nil
			}
		}
	}

	return uc.fetch(ctx, session)
}

func (uc *permissionUsecase) Refresh(ctx context.Context, session *models.Session) (*Resolver, error) {
	if !session.IsAuthenticated() {
		return nil, exceptions.ErrNotAuthenticated(nil)
	}
	return uc.fetch(ctx, session)
}

func (uc *permissionUsecase) Invalidate(ctx context.Context, sessionID string) error {
	return uc.RedisRepository.Delete(ctx, constvars.RedisKeyPermissionsPrefix+sessionID)
}

// fetch performs the single backend attempt. A failed fetch degrades to the
// role fallback table instead of blocking: the caller always gets a snapshot
// it can decide on, and the failure is only logged.
func (uc *permissionUsecase) fetch(ctx context.Context, session *models.Session) (*Resolver, error) {
	user := session.User

	records, err := uc.PermissionClient.FindPermissions(ctx, user.ClinicID, user.ID)
	if err != nil {
		uc.Log.Warn(constvars.ErrDevPermissionFetchFailed,
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.String(constvars.LoggingUserIDKey, user.ID),
			zap.String(constvars.LoggingClinicIDKey, user.ClinicID),
			zap.Error(err),
		)
		resolver := newResolver(StateDegraded, FallbackCapabilities(user.Roles), user.Roles)
		uc.cache(ctx, session.SessionID, resolver)
		return resolver, nil
	}

	capabilities := make(map[string]struct{}, len(records))
	for _, record := range records {
		if record.Active {
			capabilities[record.Name] = struct{}{}
		}
	}

	resolver := newResolver(StateReady, capabilities, user.Roles)
	uc.cache(ctx, session.SessionID, resolver)
	return resolver, nil
}

func (uc *permissionUsecase) cache(ctx context.Context, sessionID string, resolver *Resolver) {
	err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPermissionsPrefix+sessionID, resolver.snapshot(), uc.CacheExpiry)
	if err != nil {
		uc.Log.Warn("failed to cache resolver snapshot",
			zap.String(constvars.LoggingSessionIDKey, sessionID),
			zap.Error(err),
		)
	}
}

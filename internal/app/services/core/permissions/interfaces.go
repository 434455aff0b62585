package permissions

import (
	"clinicgate-service/internal/app/models"
	"context"
)

type PermissionUsecase interface {
	// Load returns the session's resolver snapshot, fetching and caching it
	// on first use. The returned snapshot is always ready or degraded.
	Load(ctx context.Context, session *models.Session) (*Resolver, error)
	// Refresh discards the cached snapshot and fetches again.
	Refresh(ctx context.Context, session *models.Session) (*Resolver, error)
	// Invalidate drops the cached snapshot, e.g. on logout.
	Invalidate(ctx context.Context, sessionID string) error
}

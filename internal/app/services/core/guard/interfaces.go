package guard

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/responses"
	"context"
)

type GuardUsecase interface {
	// Decide evaluates one navigation for the given session (nil when the
	// request carried no valid session) and records denials.
	Decide(ctx context.Context, session *models.Session, path string) (*responses.GuardDecision, error)
}

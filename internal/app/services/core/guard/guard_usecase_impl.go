package guard

import (
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/app/services/core/permissions"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/responses"
	"context"
	"time"

	"go.uber.org/zap"
)

type guardUsecase struct {
	PermissionUsecase  permissions.PermissionUsecase
	ActivityLogUsecase activitylogs.ActivityLogUsecase
	AuditPublisher     contracts.AuditPublisher
	Log                *zap.Logger
}

func NewGuardUsecase(
	permissionUsecase permissions.PermissionUsecase,
	activityLogUsecase activitylogs.ActivityLogUsecase,
	auditPublisher contracts.AuditPublisher,
	logger *zap.Logger,
) GuardUsecase {
	return &guardUsecase{
		PermissionUsecase:  permissionUsecase,
		ActivityLogUsecase: activityLogUsecase,
		AuditPublisher:     auditPublisher,
		Log:                logger,
	}
}

func (uc *guardUsecase) Decide(ctx context.Context, session *models.Session, path string) (*responses.GuardDecision, error) {
	eval := Evaluation{
		Path:    path,
		Session: session,
	}

	// Load guarantees a ready or degraded snapshot, so the evaluation below
	// never stalls on a pending resolver.
	if session.IsAuthenticated() {
		resolver, err := uc.PermissionUsecase.Load(ctx, session)
		if err != nil {
			return nil, err
		}
		eval.Resolver = resolver
	}

	decision := Evaluate(eval)

	response := &responses.GuardDecision{
		Decision:   decision.String(),
		RedirectTo: decision.RedirectTarget(),
	}
	if route, protected := matchRoute(path); protected {
		response.RequiredCapability = route.RequiredCapability
	}

	uc.Log.Debug("guard decision",
		zap.String(constvars.LoggingPathKey, path),
		zap.String(constvars.LoggingDecisionKey, response.Decision),
		zap.String(constvars.LoggingCapabilityKey, response.RequiredCapability),
	)

	if decision == DecisionRedirectUnauthorized {
		uc.recordDenial(ctx, session, path, response.RequiredCapability)
	}

	return response, nil
}

func (uc *guardUsecase) recordDenial(ctx context.Context, session *models.Session, path, capability string) {
	actor := constvars.ActivityActorAnonymous
	actorEmail := ""
	clinicID := ""
	if session.IsAuthenticated() {
		actor = session.User.ID
		actorEmail = session.User.Email
		clinicID = session.User.ClinicID
	}

	uc.ActivityLogUsecase.Record(ctx, &models.ActivityLog{
		Actor:      actor,
		ActorEmail: actorEmail,
		ClinicID:   clinicID,
		Action:     constvars.ActivityActionAccessDenied,
		Path:       path,
		Detail:     capability,
	})

	err := uc.AuditPublisher.PublishAuditEvent(ctx, &models.AuditEvent{
		Actor:      actor,
		ClinicID:   clinicID,
		Action:     constvars.ActivityActionAccessDenied,
		Path:       path,
		Capability: capability,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		uc.Log.Error("failed to publish access denial",
			zap.String(constvars.LoggingPathKey, path),
			zap.Error(err),
		)
	}
}

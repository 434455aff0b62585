package guard

import (
	"context"
	"testing"

	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/permissions"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePermissionUsecase struct {
	resolver *permissions.Resolver
	err      error
}

func (f *fakePermissionUsecase) Load(ctx context.Context, session *models.Session) (*permissions.Resolver, error) {
	return f.resolver, f.err
}

func (f *fakePermissionUsecase) Refresh(ctx context.Context, session *models.Session) (*permissions.Resolver, error) {
	return f.resolver, f.err
}

func (f *fakePermissionUsecase) Invalidate(ctx context.Context, sessionID string) error {
	return nil
}

type fakeActivityLogUsecase struct {
	recorded []*models.ActivityLog
}

func (f *fakeActivityLogUsecase) Record(ctx context.Context, entry *models.ActivityLog) {
	f.recorded = append(f.recorded, entry)
}

func (f *fakeActivityLogUsecase) List(ctx context.Context, request *requests.ListActivityLogs, baseURL string) ([]responses.ActivityLog, *responses.Pagination, error) {
	return nil, nil, nil
}

func (f *fakeActivityLogUsecase) Archive(ctx context.Context, request *requests.ArchiveActivityLogs) (*responses.ArchiveActivityLogs, error) {
	return nil, nil
}

type fakeAuditPublisher struct {
	events []*models.AuditEvent
}

func (f *fakeAuditPublisher) PublishAuditEvent(ctx context.Context, event *models.AuditEvent) error {
	f.events = append(f.events, event)
	return nil
}

func TestGuardUsecaseDecide(t *testing.T) {
	ctx := context.Background()

	t.Run("Allowed navigation leaves no denial trace", func(t *testing.T) {
		activityLog := &fakeActivityLogUsecase{}
		audit := &fakeAuditPublisher{}
		usecase := NewGuardUsecase(
			&fakePermissionUsecase{resolver: readyResolver(constvars.CapabilityPatients)},
			activityLog,
			audit,
			zap.NewNop(),
		)

		decision, err := usecase.Decide(ctx, testSession(3, "nurse"), "/patients/7")
		require.NoError(t, err)

		assert.Equal(t, "allowed", decision.Decision)
		assert.Empty(t, decision.RedirectTo)
		assert.Equal(t, constvars.CapabilityPatients, decision.RequiredCapability)
		assert.Empty(t, activityLog.recorded)
		assert.Empty(t, audit.events)
	})

	t.Run("Denied navigation records an activity entry and audit event", func(t *testing.T) {
		activityLog := &fakeActivityLogUsecase{}
		audit := &fakeAuditPublisher{}
		usecase := NewGuardUsecase(
			&fakePermissionUsecase{resolver: readyResolver(constvars.CapabilityBilling)},
			activityLog,
			audit,
			zap.NewNop(),
		)
		session := testSession(5, "accountant")

		decision, err := usecase.Decide(ctx, session, "/inventory")
		require.NoError(t, err)

		assert.Equal(t, "redirect_unauthorized", decision.Decision)
		assert.Equal(t, PathUnauthorized, decision.RedirectTo)
		assert.Equal(t, constvars.CapabilityInventory, decision.RequiredCapability)

		require.Len(t, activityLog.recorded, 1)
		entry := activityLog.recorded[0]
		assert.Equal(t, constvars.ActivityActionAccessDenied, entry.Action)
		assert.Equal(t, session.User.ID, entry.Actor)
		assert.Equal(t, "/inventory", entry.Path)
		assert.Equal(t, constvars.CapabilityInventory, entry.Detail)

		require.Len(t, audit.events, 1)
		assert.Equal(t, session.User.ClinicID, audit.events[0].ClinicID)
		assert.Equal(t, constvars.CapabilityInventory, audit.events[0].Capability)
	})

	t.Run("Unauthenticated navigation redirects to login without loading permissions", func(t *testing.T) {
		activityLog := &fakeActivityLogUsecase{}
		usecase := NewGuardUsecase(
			&fakePermissionUsecase{err: assert.AnError},
			activityLog,
			&fakeAuditPublisher{},
			zap.NewNop(),
		)

		decision, err := usecase.Decide(ctx, nil, "/appointments")
		require.NoError(t, err)

		assert.Equal(t, "redirect_login", decision.Decision)
		assert.Equal(t, PathLogin, decision.RedirectTo)
		assert.Empty(t, activityLog.recorded)
	})

	t.Run("Public path needs no session at all", func(t *testing.T) {
		usecase := NewGuardUsecase(
			&fakePermissionUsecase{},
			&fakeActivityLogUsecase{},
			&fakeAuditPublisher{},
			zap.NewNop(),
		)

		decision, err := usecase.Decide(ctx, nil, PathHome)
		require.NoError(t, err)

		assert.Equal(t, "allowed", decision.Decision)
		assert.Empty(t, decision.RequiredCapability)
	})
}

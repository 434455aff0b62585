package auth

import (
	"context"
	"testing"
	"time"

	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/permissions"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackendAuthClient struct {
	user      *models.User
	token     string
	loginErr  error
	logoutErr error
	meUser    *models.User
	meErr     error

	logoutCalls int
}

func (f *fakeBackendAuthClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if f.loginErr != nil {
		return nil, "", f.loginErr
	}
	return f.user, f.token, nil
}

func (f *fakeBackendAuthClient) CurrentUser(ctx context.Context, backendToken string) (*models.User, error) {
	if f.meErr != nil {
		return nil, f.meErr
	}
	return f.meUser, nil
}

func (f *fakeBackendAuthClient) Logout(ctx context.Context, backendToken string) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeSessionService struct {
	stored  map[string]*models.Session
	deleted []string
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{stored: make(map[string]*models.Session)}
}

func (f *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	return nil, nil
}

func (f *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (f *fakeSessionService) StoreSession(ctx context.Context, session *models.Session) error {
	f.stored[session.SessionID] = session
	return nil
}

func (f *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	f.deleted = append(f.deleted, sessionID)
	delete(f.stored, sessionID)
	return nil
}

type fakePermissionUsecase struct {
	loadCalls        int
	invalidatedID    string
	invalidateCalled bool
}

func (f *fakePermissionUsecase) Load(ctx context.Context, session *models.Session) (*permissions.Resolver, error) {
	f.loadCalls++
	return permissions.NewReadyResolver(nil, session.User.Roles), nil
}

func (f *fakePermissionUsecase) Refresh(ctx context.Context, session *models.Session) (*permissions.Resolver, error) {
	return permissions.NewReadyResolver(nil, session.User.Roles), nil
}

func (f *fakePermissionUsecase) Invalidate(ctx context.Context, sessionID string) error {
	f.invalidateCalled = true
	f.invalidatedID = sessionID
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

func authTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 8},
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 8},
	}
}

func backendUser() *models.User {
	return &models.User{
		ID:        "user-1",
		FirstName: "Ana",
		LastName:  "Flores",
		Email:     "ana@clinic.test",
		ClinicID:  "clinic-1",
		Roles:     []models.Role{{ID: constvars.RoleIDDoctor, Name: constvars.RoleNameDoctor}},
	}
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful login creates a session and returns a session JWT", func(t *testing.T) {
		backend := &fakeBackendAuthClient{user: backendUser(), token: "backend-token"}
		sessions := newFakeSessionService()
		permissionUsecase := &fakePermissionUsecase{}
		activityLog := &fakeActivityLogUsecase{}
		usecase := NewAuthUsecase(backend, sessions, permissionUsecase, activityLog, authTestConfig(), zap.NewNop())

		response, err := usecase.Login(ctx, &requests.Login{Email: "ana@clinic.test", Password: "secret-password"})
		require.NoError(t, err)

		require.Len(t, sessions.stored, 1)
		var stored *models.Session
		for _, s := range sessions.stored {
			stored = s
		}
		assert.Equal(t, "backend-token", stored.BackendToken)
		assert.True(t, stored.ExpiresAt.After(time.Now()))

		sessionID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, stored.SessionID, sessionID, "the JWT must carry only the session ID")

		assert.Equal(t, "ana@clinic.test", response.User.Email)
		assert.Equal(t, 1, permissionUsecase.loadCalls, "login should warm the capability set")

		require.Len(t, activityLog.recorded, 1)
		assert.Equal(t, constvars.ActivityActionLogin, activityLog.recorded[0].Action)
	})

	t.Run("Backend rejection surfaces as invalid credentials", func(t *testing.T) {
		backend := &fakeBackendAuthClient{loginErr: exceptions.ErrInvalidCredentials(nil)}
		usecase := NewAuthUsecase(backend, newFakeSessionService(), &fakePermissionUsecase{}, &fakeActivityLogUsecase{}, authTestConfig(), zap.NewNop())

		_, err := usecase.Login(ctx, &requests.Login{Email: "ana@clinic.test", Password: "wrong-password"})
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCodeOf(err))
	})
}

func TestAuthUsecaseLogout(t *testing.T) {
	ctx := context.Background()

	session := &models.Session{
		SessionID:    "sess-1",
		BackendToken: "backend-token",
		User:         backendUser(),
		ExpiresAt:    time.Now().Add(time.Hour),
	}

	t.Run("Logout clears the session and the cached snapshot", func(t *testing.T) {
		backend := &fakeBackendAuthClient{}
		sessions := newFakeSessionService()
		permissionUsecase := &fakePermissionUsecase{}
		activityLog := &fakeActivityLogUsecase{}
		usecase := NewAuthUsecase(backend, sessions, permissionUsecase, activityLog, authTestConfig(), zap.NewNop())

		require.NoError(t, usecase.Logout(ctx, session))

		assert.Equal(t, 1, backend.logoutCalls)
		assert.Equal(t, []string{"sess-1"}, sessions.deleted)
		assert.True(t, permissionUsecase.invalidateCalled)
		assert.Equal(t, "sess-1", permissionUsecase.invalidatedID)

		require.Len(t, activityLog.recorded, 1)
		assert.Equal(t, constvars.ActivityActionLogout, activityLog.recorded[0].Action)
	})

	t.Run("Backend logout failure still clears the local session", func(t *testing.T) {
		backend := &fakeBackendAuthClient{logoutErr: assert.AnError}
		sessions := newFakeSessionService()
		usecase := NewAuthUsecase(backend, sessions, &fakePermissionUsecase{}, &fakeActivityLogUsecase{}, authTestConfig(), zap.NewNop())

		require.NoError(t, usecase.Logout(ctx, session))
		assert.Equal(t, []string{"sess-1"}, sessions.deleted)
	})

	t.Run("Anonymous session cannot log out", func(t *testing.T) {
		usecase := NewAuthUsecase(&fakeBackendAuthClient{}, newFakeSessionService(), &fakePermissionUsecase{}, &fakeActivityLogUsecase{}, authTestConfig(), zap.NewNop())

		err := usecase.Logout(ctx, nil)
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCodeOf(err))
	})
}

func TestAuthUsecaseCurrentUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Refreshes the stored user snapshot from the backend", func(t *testing.T) {
		updated := backendUser()
		updated.Roles = []models.Role{{ID: constvars.RoleIDAdmin, Name: constvars.RoleNameAdmin}}
		backend := &fakeBackendAuthClient{meUser: updated}
		sessions := newFakeSessionService()
		usecase := NewAuthUsecase(backend, sessions, &fakePermissionUsecase{}, &fakeActivityLogUsecase{}, authTestConfig(), zap.NewNop())

		session := &models.Session{
			SessionID:    "sess-1",
			BackendToken: "backend-token",
			User:         backendUser(),
			ExpiresAt:    time.Now().Add(time.Hour),
		}

		profile, err := usecase.CurrentUser(ctx, session)
		require.NoError(t, err)

		assert.Equal(t, constvars.RoleNameAdmin, profile.Roles[0].Name)
		stored := sessions.stored["sess-1"]
		require.NotNil(t, stored)
		assert.Equal(t, updated, stored.User, "the session must hold the replaced snapshot")
		assert.Equal(t, "backend-token", stored.BackendToken, "the backend token must survive the replace")
	})

	t.Run("Expired backend token surfaces to the caller", func(t *testing.T) {
		backend := &fakeBackendAuthClient{meErr: exceptions.ErrSessionExpired(nil)}
		usecase := NewAuthUsecase(backend, newFakeSessionService(), &fakePermissionUsecase{}, &fakeActivityLogUsecase{}, authTestConfig(), zap.NewNop())

		session := &models.Session{
			SessionID:    "sess-1",
			BackendToken: "stale-token",
			User:         backendUser(),
			ExpiresAt:    time.Now().Add(time.Hour),
		}

		_, err := usecase.CurrentUser(ctx, session)
		require.Error(t, err)
		assert.Equal(t, 401, exceptions.StatusCodeOf(err))
	})
}

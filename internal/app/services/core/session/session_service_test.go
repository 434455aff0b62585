package session

import (
	"context"
	"testing"
	"time"

	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedisRepository struct {
	store      map[string]string
	lastExpiry time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(data)
	f.lastExpiry = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{LoginSessionExpiredTimeInHours: 8},
	}
}

func TestSessionServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	redisRepo := newFakeRedisRepository()
	service := NewSessionService(redisRepo, testInternalConfig())

	session := &models.Session{
		SessionID:    "sess-1",
		BackendToken: "backend-token",
		User: &models.User{
			ID:       "user-1",
			Email:    "doctor@clinic.test",
			ClinicID: "clinic-1",
			Roles:    []models.Role{{ID: constvars.RoleIDDoctor, Name: constvars.RoleNameDoctor}},
		},
		ExpiresAt: time.Now().Add(8 * time.Hour).UTC(),
	}

	require.NoError(t, service.StoreSession(ctx, session))
	assert.Equal(t, 8*time.Hour, redisRepo.lastExpiry)

	sessionData, err := service.GetSessionData(ctx, "sess-1")
	require.NoError(t, err)

	restored, err := service.ParseSessionData(ctx, sessionData)
	require.NoError(t, err)

	assert.Equal(t, session.SessionID, restored.SessionID)
	assert.Equal(t, session.BackendToken, restored.BackendToken)
	require.NotNil(t, restored.User)
	assert.Equal(t, session.User.Email, restored.User.Email)
	assert.Equal(t, session.User.Roles, restored.User.Roles)
	assert.True(t, restored.IsAuthenticated())
}

func TestSessionServiceGetMissingSession(t *testing.T) {
	service := NewSessionService(newFakeRedisRepository(), testInternalConfig())

	_, err := service.GetSessionData(context.Background(), "unknown")
	require.Error(t, err)
	assert.Equal(t, 401, exceptions.StatusCodeOf(err))
}

func TestSessionServiceDelete(t *testing.T) {
	ctx := context.Background()
	redisRepo := newFakeRedisRepository()
	service := NewSessionService(redisRepo, testInternalConfig())

	session := &models.Session{SessionID: "sess-2", User: &models.User{ID: "user-2"}}
	require.NoError(t, service.StoreSession(ctx, session))
	require.NoError(t, service.DeleteSession(ctx, "sess-2"))

	_, err := service.GetSessionData(ctx, "sess-2")
	assert.Error(t, err)
}

func TestParseSessionDataMalformed(t *testing.T) {
	service := NewSessionService(newFakeRedisRepository(), testInternalConfig())

	_, err := service.ParseSessionData(context.Background(), "{not json")
	assert.Error(t, err)
}

package middlewares

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"
)

// Authenticate rejects requests without a valid session. The JWT only
// carries the session ID; the session blob itself lives in Redis so a
// revoked session dies immediately, not at token expiry.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches a session when the request carries a valid
// token and passes through untouched otherwise. The guard endpoint uses it:
// a missing session is an unauthenticated evaluation, not an error.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	token := strings.TrimPrefix(authHeader, constvars.BearerTokenPrefix)
	sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
	if err != nil {
		if err == context.DeadlineExceeded {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, err
	}

	session, err := m.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if session.IsExpired(time.Now()) {
		return nil, exceptions.ErrSessionExpired(nil)
	}

	return session, nil
}

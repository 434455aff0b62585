package middlewares

import (
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// APIKeyAuth authenticates service-to-service callers against the bcrypt
// hash of the superadmin key held in config. Requests without the header
// pass through for the regular session middleware to handle.
func (m *Middlewares) APIKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderXAPIKey)

		if apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		if m.InternalConfig.App.SuperadminAPIKeyHash == "" ||
			!utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.SuperadminAPIKeyHash) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_API_KEY_AUTH, true)

		m.Log.Info("API Key authentication successful",
			zap.String("ip", r.RemoteAddr),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

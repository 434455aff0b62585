package middlewares

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// RequireCapability gates an endpoint on one capability. It must be mounted
// behind Authenticate; the resolver lookup fails closed, so a session whose
// permissions cannot be resolved is denied rather than let through.
func (m *Middlewares) RequireCapability(capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthenticated(nil))
				return
			}

			resolver, err := m.PermissionUsecase.Load(r.Context(), session)
			if err != nil {
				utils.BuildErrorResponse(m.Log, w, err)
				return
			}

			if !resolver.HasPermission(capability) {
				m.Log.Info("capability denied",
					zap.String(constvars.LoggingUserIDKey, session.User.ID),
					zap.String(constvars.LoggingCapabilityKey, capability),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInsufficientPermission(nil, capability))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

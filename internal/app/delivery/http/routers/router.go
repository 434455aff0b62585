package routers

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/app/services/core/auth"
	"clinicgate-service/internal/app/services/core/guard"
	"clinicgate-service/internal/app/services/core/permissions"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	permissionController *permissions.PermissionController,
	guardController *guard.GuardController,
	activityLogController *activitylogs.ActivityLogController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.APIKeyAuth)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, internalConfig, middlewares, authController)
			})

			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, permissionController)
			})

			r.Route("/guard", func(r chi.Router) {
				attachGuardRoutes(r, middlewares, guardController)
			})

			r.Route("/activity-logs", func(r chi.Router) {
				attachActivityLogRoutes(r, middlewares, activityLogController)
			})
		})
	})
}

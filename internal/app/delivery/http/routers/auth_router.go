package routers

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/services/core/auth"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(
	router chi.Router,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *auth.AuthController,
) {
	loginRateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.LoginRateLimitPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.LoginRateLimitBlockInMinutes)*time.Minute,
	)

	router.Group(func(r chi.Router) {
		r.Use(loginRateLimiter.Limit)
		r.Post("/login", authController.Login)
	})

	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Post("/logout", authController.Logout)
		r.Get("/me", authController.CurrentUser)
	})
}

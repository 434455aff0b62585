package routers

import (
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/services/core/guard"

	"github.com/go-chi/chi/v5"
)

func attachGuardRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	guardController *guard.GuardController,
) {
	router.Group(func(r chi.Router) {
		r.Use(mw.OptionalAuthenticate)
		r.Post("/decision", guardController.Decision)
	})
}

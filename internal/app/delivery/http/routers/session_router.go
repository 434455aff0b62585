package routers

import (
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/services/core/permissions"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	permissionController *permissions.PermissionController,
) {
	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Get("/capabilities", permissionController.Capabilities)
		r.Post("/permissions/refresh", permissionController.RefreshPermissions)
	})
}

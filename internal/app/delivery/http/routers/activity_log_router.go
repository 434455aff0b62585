package routers

import (
	"clinicgate-service/internal/app/delivery/http/middlewares"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachActivityLogRoutes(
	router chi.Router,
	mw *middlewares.Middlewares,
	activityLogController *activitylogs.ActivityLogController,
) {
	router.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Use(mw.RequireCapability(constvars.CapabilityActivityLogs))
		r.Get("/", activityLogController.ListActivityLogs)
		r.Post("/archive", activityLogController.ArchiveActivityLogs)
	})
}

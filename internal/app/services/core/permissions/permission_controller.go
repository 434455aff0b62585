package permissions

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/app/services/core/activitylogs"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/responses"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type PermissionController struct {
	PermissionUsecase  PermissionUsecase
	ActivityLogUsecase activitylogs.ActivityLogUsecase
	Log                *zap.Logger
}

func NewPermissionController(
	permissionUsecase PermissionUsecase,
	activityLogUsecase activitylogs.ActivityLogUsecase,
	logger *zap.Logger,
) *PermissionController {
	return &PermissionController{
		PermissionUsecase:  permissionUsecase,
		ActivityLogUsecase: activityLogUsecase,
		Log:                logger,
	}
}

// Capabilities returns the session's resolver snapshot. The SPA treats this
// as its capability signal and re-renders gated regions whenever it changes.
func (ctrl *PermissionController) Capabilities(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resolver, err := ctrl.PermissionUsecase.Load(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CapabilitiesRetrievedMessage, buildCapabilitiesResponse(resolver))
}

func (ctrl *PermissionController) RefreshPermissions(w http.ResponseWriter, r *http.Request) {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resolver, err := ctrl.PermissionUsecase.Refresh(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.ActivityLogUsecase.Record(ctx, &models.ActivityLog{
		Actor:      session.User.ID,
		ActorEmail: session.User.Email,
		ClinicID:   session.User.ClinicID,
		Action:     constvars.ActivityActionPermissionRefresh,
		Detail:     resolver.State().String(),
	})

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PermissionsRefreshedMessage, buildCapabilitiesResponse(resolver))
}

func buildCapabilitiesResponse(resolver *Resolver) *responses.SessionCapabilities {
	roles := make([]responses.Role, 0, len(resolver.Roles()))
	for _, role := range resolver.Roles() {
		roles = append(roles, responses.Role{ID: role.ID, Name: role.Name})
	}
	return &responses.SessionCapabilities{
		State:        resolver.State().String(),
		Capabilities: resolver.Capabilities(),
		Roles:        roles,
	}
}

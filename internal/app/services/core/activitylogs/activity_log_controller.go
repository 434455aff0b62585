package activitylogs

import (
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ActivityLogController struct {
	ActivityLogUsecase ActivityLogUsecase
	Log                *zap.Logger
}

func NewActivityLogController(activityLogUsecase ActivityLogUsecase, logger *zap.Logger) *ActivityLogController {
	return &ActivityLogController{
		ActivityLogUsecase: activityLogUsecase,
		Log:                logger,
	}
}

func (ctrl *ActivityLogController) ListActivityLogs(w http.ResponseWriter, r *http.Request) {
	request := utils.BuildListActivityLogsRequest(r)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	entries, pagination, err := ctrl.ActivityLogUsecase.List(ctx, request, r.URL.Path)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ActivityLogsRetrievedMessage, pagination, entries)
}

func (ctrl *ActivityLogController) ArchiveActivityLogs(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ArchiveActivityLogs)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.ActivityLogUsecase.Archive(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ActivityLogsArchivedMessage, response)
}

package guard

import (
	"clinicgate-service/internal/app/models"
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

type GuardController struct {
	GuardUsecase GuardUsecase
	Log          *zap.Logger
}

func NewGuardController(guardUsecase GuardUsecase, logger *zap.Logger) *GuardController {
	return &GuardController{
		GuardUsecase: guardUsecase,
		Log:          logger,
	}
}

// Decision serves the SPA's per-navigation check. The route is mounted
// behind OptionalAuthenticate, so an invalid or absent token simply means an
// unauthenticated evaluation rather than an error.
func (ctrl *GuardController) Decision(w http.ResponseWriter, r *http.Request) {
	request := new(requests.GuardDecision)
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

	session, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.GuardUsecase.Decide(ctx, session, request.Path)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GuardDecisionMessage, response)
}

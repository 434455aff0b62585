package guard

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGuardUsecase struct {
	response *responses.GuardDecision
	err      error
	lastPath string
}

func (f *fakeGuardUsecase) Decide(ctx context.Context, session *models.Session, path string) (*responses.GuardDecision, error) {
	f.lastPath = path
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func TestGuardControllerDecision(t *testing.T) {
	t.Run("Valid request returns the decision envelope", func(t *testing.T) {
		usecase := &fakeGuardUsecase{response: &responses.GuardDecision{
			Decision:   "redirect_login",
			RedirectTo: PathLogin,
		}}
		controller := NewGuardController(usecase, zap.NewNop())

		body, _ := json.Marshal(map[string]string{"path": "/patients"})
		req := httptest.NewRequest("POST", "/api/v1/guard/decision", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()

		controller.Decision(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/patients", usecase.lastPath)

		var envelope responses.ResponseDTO
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
		assert.True(t, envelope.Success)

		data, ok := envelope.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "redirect_login", data["decision"])
		assert.Equal(t, PathLogin, data["redirectTo"])
	})

	t.Run("Missing path fails validation", func(t *testing.T) {
		controller := NewGuardController(&fakeGuardUsecase{}, zap.NewNop())

		req := httptest.NewRequest("POST", "/api/v1/guard/decision", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()

		controller.Decision(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Malformed body is rejected", func(t *testing.T) {
		controller := NewGuardController(&fakeGuardUsecase{}, zap.NewNop())

		req := httptest.NewRequest("POST", "/api/v1/guard/decision", bytes.NewBufferString("{not json"))
		rr := httptest.NewRecorder()

		controller.Decision(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

package auth

import (
	"bytes"
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	backendAuthClientInstance contracts.BackendAuthClient
	onceBackendAuthClient     sync.Once
)

type backendAuthClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewBackendAuthClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.BackendAuthClient {
	onceBackendAuthClient.Do(func() {
		client := &backendAuthClient{
			BaseUrl: internalConfig.Backend.BaseUrl,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		backendAuthClientInstance = client
	})
	return backendAuthClientInstance
}

func (c *backendAuthClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, "", exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/auth/login", bytes.NewBuffer(payload))
	if err != nil {
		return nil, "", exceptions.ErrBackendCreateRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backendAuthClient.Login error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, "", exceptions.ErrBackendSendRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", exceptions.ErrBackendMalformedResponse(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, "", exceptions.ErrInvalidCredentials(nil)
	default:
		return nil, "", exceptions.ErrBackendUnexpectedStatus(nil, resp.StatusCode)
	}

	parsed := gjson.ParseBytes(body)
	token := parsed.Get("token").String()
	user := parseUser(parsed.Get("user"))
	if token == "" || user == nil {
		return nil, "", exceptions.ErrBackendMalformedResponse(nil)
	}

	return user, token, nil
}

func (c *backendAuthClient) CurrentUser(ctx context.Context, backendToken string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl+"/auth/me", nil)
	if err != nil {
		return nil, exceptions.ErrBackendCreateRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+backendToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("backendAuthClient.CurrentUser error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendSendRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrBackendMalformedResponse(err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, exceptions.ErrSessionExpired(nil)
	default:
		return nil, exceptions.ErrBackendUnexpectedStatus(nil, resp.StatusCode)
	}

	user := parseUser(gjson.ParseBytes(body))
	if user == nil {
		return nil, exceptions.ErrBackendMalformedResponse(nil)
	}

	return user, nil
}

func (c *backendAuthClient) Logout(ctx context.Context, backendToken string) error {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl+"/auth/logout", nil)
	if err != nil {
		return exceptions.ErrBackendCreateRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerTokenPrefix+backendToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrBackendSendRequest(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusUnauthorized {
		return exceptions.ErrBackendUnexpectedStatus(nil, resp.StatusCode)
	}
	return nil
}

// parseUser tolerates extra fields in backend payloads; only the snapshot the
// gate needs is lifted out.
func parseUser(value gjson.Result) *models.User {
	if !value.Exists() || value.Get("id").String() == "" {
		return nil
	}

	user := &models.User{
		ID:        value.Get("id").String(),
		FirstName: value.Get("firstName").String(),
		LastName:  value.Get("lastName").String(),
		Email:     value.Get("email").String(),
		ClinicID:  value.Get("clinicId").String(),
	}

	for _, role := range value.Get("roles").Array() {
		user.Roles = append(user.Roles, models.Role{
			ID:   int(role.Get("id").Int()),
			Name: role.Get("name").String(),
		})
	}

	return user
}

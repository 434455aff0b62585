package permissions

import (
	"clinicgate-service/internal/app/config"
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/exceptions"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

var (
	permissionClientInstance contracts.PermissionClient
	oncePermissionClient     sync.Once
)

type permissionClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewPermissionClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PermissionClient {
	oncePermissionClient.Do(func() {
		client := &permissionClient{
			BaseUrl: internalConfig.Backend.BaseUrl,
			HTTPClient: &http.Client{
				Timeout: time.Duration(internalConfig.Backend.RequestTimeoutInSeconds) * time.Second,
			},
			Log: logger,
		}
		permissionClientInstance = client
	})
	return permissionClientInstance
}

func (c *permissionClient) FindPermissions(ctx context.Context, clinicID, userID string) ([]models.Permission, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	url := fmt.Sprintf("%s/clinics/%s/users/%s/permissions", c.BaseUrl, clinicID, userID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, url, nil)
	if err != nil {
		return nil, exceptions.ErrBackendCreateRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("permissionClient.FindPermissions error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingClinicIDKey, clinicID),
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBackendSendRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrBackendMalformedResponse(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrBackendUnexpectedStatus(nil, resp.StatusCode)
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsArray() {
		return nil, exceptions.ErrBackendMalformedResponse(nil)
	}

	var permissions []models.Permission
	for _, record := range parsed.Array() {
		permissions = append(permissions, models.Permission{
			ID:     int(record.Get("id").Int()),
			Name:   record.Get("name").String(),
			Active: record.Get("active").Bool(),
		})
	}

	return permissions, nil
}

package contracts

import (
	"clinicgate-service/internal/app/models"
	"context"
)

// BackendAuthClient fronts the clinic backend's auth endpoints. The token
// returned by Login is the backend's own bearer token, held inside the
// session for later Me/Logout calls; it is never handed to the browser.
type BackendAuthClient interface {
	Login(ctx context.Context, email, password string) (user *models.User, backendToken string, err error)
	CurrentUser(ctx context.Context, backendToken string) (*models.User, error)
	Logout(ctx context.Context, backendToken string) error
}

package contracts

import (
	"clinicgate-service/internal/app/models"
	"context"
)

type PermissionClient interface {
	FindPermissions(ctx context.Context, clinicID, userID string) ([]models.Permission, error)
}

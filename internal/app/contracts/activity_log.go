package contracts

import (
	"clinicgate-service/internal/app/models"
	"context"
)

type ActivityLogRepository interface {
	Insert(ctx context.Context, entry *models.ActivityLog) error
	Find(ctx context.Context, filter models.ActivityLogFilter, page, pageSize int) (entries []models.ActivityLog, total int64, err error)
	FindRange(ctx context.Context, filter models.ActivityLogFilter) ([]models.ActivityLog, error)
}

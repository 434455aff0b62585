package activitylogs

import (
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"
	"context"
)

type ActivityLogUsecase interface {
	// Record persists an activity entry. Failures are logged and swallowed:
	// recording must never break the operation being recorded.
	Record(ctx context.Context, entry *models.ActivityLog)
	List(ctx context.Context, request *requests.ListActivityLogs, baseURL string) ([]responses.ActivityLog, *responses.Pagination, error)
	Archive(ctx context.Context, request *requests.ArchiveActivityLogs) (*responses.ArchiveActivityLogs, error)
}

package activitylogs

import (
	"clinicgate-service/internal/app/contracts"
	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/dto/responses"
	"clinicgate-service/internal/pkg/exceptions"
	"clinicgate-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const archiveDateLayout = "2006-01-02"

type activityLogUsecase struct {
	ActivityLogRepository contracts.ActivityLogRepository
	ArchiveStorage        contracts.ArchiveStorage
	Log                   *zap.Logger
}

func NewActivityLogUsecase(
	activityLogRepository contracts.ActivityLogRepository,
	archiveStorage contracts.ArchiveStorage,
	logger *zap.Logger,
) ActivityLogUsecase {
	return &activityLogUsecase{
		ActivityLogRepository: activityLogRepository,
		ArchiveStorage:        archiveStorage,
		Log:                   logger,
	}
}

func (uc *activityLogUsecase) Record(ctx context.Context, entry *models.ActivityLog) {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	err := uc.ActivityLogRepository.Insert(ctx, entry)
	if err != nil {
		uc.Log.Error("failed to record activity log",
			zap.String("action", entry.Action),
			zap.String("actor", entry.Actor),
			zap.Error(err),
		)
	}
}

func (uc *activityLogUsecase) List(ctx context.Context, request *requests.ListActivityLogs, baseURL string) ([]responses.ActivityLog, *responses.Pagination, error) {
	filter, err := buildFilter(request.Actor, request.Action, request.From, request.To)
	if err != nil {
		return nil, nil, err
	}

	entries, total, err := uc.ActivityLogRepository.Find(ctx, filter, request.Page, request.PageSize)
	if err != nil {
		return nil, nil, err
	}

	pagination := utils.BuildPaginationResponse(int(total), request.Page, request.PageSize, baseURL)
	return utils.BuildActivityLogResponses(entries), pagination, nil
}

func (uc *activityLogUsecase) Archive(ctx context.Context, request *requests.ArchiveActivityLogs) (*responses.ArchiveActivityLogs, error) {
	filter, err := buildFilter("", "", request.From, request.To)
	if err != nil {
		return nil, err
	}

	entries, err := uc.ActivityLogRepository.FindRange(ctx, filter)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf("activity-logs-%s-to-%s.json", request.From, request.To)
	objectName, err = uc.ArchiveStorage.UploadJSON(ctx, objectName, data)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("activity logs archived",
		zap.String("object_name", objectName),
		zap.Int("entries", len(entries)),
	)

	return &responses.ArchiveActivityLogs{
		ObjectName: objectName,
		Entries:    len(entries),
	}, nil
}

// buildFilter parses the date bounds; To is exclusive at the following
// midnight so a single-day range covers the whole day.
func buildFilter(actor, action, from, to string) (models.ActivityLogFilter, error) {
	filter := models.ActivityLogFilter{
		Actor:  actor,
		Action: action,
	}

	if from != "" {
		parsed, err := time.Parse(archiveDateLayout, from)
		if err != nil {
			return filter, exceptions.ErrCannotParseDate(err)
		}
		filter.From = parsed
	}
	if to != "" {
		parsed, err := time.Parse(archiveDateLayout, to)
		if err != nil {
			return filter, exceptions.ErrCannotParseDate(err)
		}
		filter.To = parsed.AddDate(0, 0, 1)
	}

	return filter, nil
}

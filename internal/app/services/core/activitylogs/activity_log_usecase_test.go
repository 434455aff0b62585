package activitylogs

import (
	"context"
	"testing"
	"time"

	"clinicgate-service/internal/app/models"
	"clinicgate-service/internal/pkg/constvars"
	"clinicgate-service/internal/pkg/dto/requests"
	"clinicgate-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeActivityLogRepository struct {
	inserted   []*models.ActivityLog
	entries    []models.ActivityLog
	lastFilter models.ActivityLogFilter
	insertErr  error
}

func (f *fakeActivityLogRepository) Insert(ctx context.Context, entry *models.ActivityLog) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, entry)
	return nil
}

func (f *fakeActivityLogRepository) Find(ctx context.Context, filter models.ActivityLogFilter, page, pageSize int) ([]models.ActivityLog, int64, error) {
	f.lastFilter = filter
	start := (page - 1) * pageSize
	if start >= len(f.entries) {
		return nil, int64(len(f.entries)), nil
	}
	end := start + pageSize
	if end > len(f.entries) {
		end = len(f.entries)
	}
	return f.entries[start:end], int64(len(f.entries)), nil
}

func (f *fakeActivityLogRepository) FindRange(ctx context.Context, filter models.ActivityLogFilter) ([]models.ActivityLog, error) {
	f.lastFilter = filter
	return f.entries, nil
}

type fakeArchiveStorage struct {
	objectName string
	data       []byte
	uploadErr  error
}

func (f *fakeArchiveStorage) UploadJSON(ctx context.Context, objectName string, data []byte) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.objectName = objectName
	f.data = data
	return objectName, nil
}

func TestActivityLogUsecaseRecord(t *testing.T) {
	ctx := context.Background()

	t.Run("Sets the timestamp when missing", func(t *testing.T) {
		repo := &fakeActivityLogRepository{}
		usecase := NewActivityLogUsecase(repo, &fakeArchiveStorage{}, zap.NewNop())

		usecase.Record(ctx, &models.ActivityLog{
			Actor:  "user-1",
			Action: constvars.ActivityActionLogin,
		})

		require.Len(t, repo.inserted, 1)
		assert.False(t, repo.inserted[0].CreatedAt.IsZero())
	})

	t.Run("Swallows repository failures", func(t *testing.T) {
		repo := &fakeActivityLogRepository{insertErr: assert.AnError}
		usecase := NewActivityLogUsecase(repo, &fakeArchiveStorage{}, zap.NewNop())

		usecase.Record(ctx, &models.ActivityLog{Actor: "user-1", Action: constvars.ActivityActionLogout})
		assert.Empty(t, repo.inserted)
	})
}

func TestActivityLogUsecaseList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

	repo := &fakeActivityLogRepository{entries: []models.ActivityLog{
		{ID: "1", Actor: "user-1", Action: constvars.ActivityActionLogin, CreatedAt: now},
		{ID: "2", Actor: "user-2", Action: constvars.ActivityActionAccessDenied, Path: "/billing", CreatedAt: now},
		{ID: "3", Actor: "user-1", Action: constvars.ActivityActionLogout, CreatedAt: now},
	}}
	usecase := NewActivityLogUsecase(repo, &fakeArchiveStorage{}, zap.NewNop())

	t.Run("Paginates and maps entries", func(t *testing.T) {
		request := &requests.ListActivityLogs{Page: 1, PageSize: 2}

		entries, pagination, err := usecase.List(ctx, request, "http://localhost/api/v1/activity-logs")
		require.NoError(t, err)

		assert.Len(t, entries, 2)
		assert.Equal(t, "1", entries[0].ID)
		assert.Equal(t, now.Format(time.RFC3339), entries[0].CreatedAt)
		require.NotNil(t, pagination)
		assert.Equal(t, 3, pagination.Total)
		assert.NotEmpty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("Passes date bounds with an exclusive upper day", func(t *testing.T) {
		request := &requests.ListActivityLogs{
			Page: 1, PageSize: 20,
			From: "2026-08-01",
			To:   "2026-08-20",
		}

		_, _, err := usecase.List(ctx, request, "http://localhost/api/v1/activity-logs")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), repo.lastFilter.From)
		assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC), repo.lastFilter.To)
	})

	t.Run("Rejects malformed dates", func(t *testing.T) {
		request := &requests.ListActivityLogs{Page: 1, PageSize: 20, From: "01-08-2026"}

		_, _, err := usecase.List(ctx, request, "http://localhost/api/v1/activity-logs")
		require.Error(t, err)
		assert.Equal(t, 400, exceptions.StatusCodeOf(err))
	})
}

func TestActivityLogUsecaseArchive(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Uploads the range as a JSON object", func(t *testing.T) {
		repo := &fakeActivityLogRepository{entries: []models.ActivityLog{
			{ID: "1", Actor: "user-1", Action: constvars.ActivityActionLogin, CreatedAt: now},
			{ID: "2", Actor: "user-1", Action: constvars.ActivityActionLogout, CreatedAt: now},
		}}
		storage := &fakeArchiveStorage{}
		usecase := NewActivityLogUsecase(repo, storage, zap.NewNop())

		response, err := usecase.Archive(ctx, &requests.ArchiveActivityLogs{From: "2026-08-01", To: "2026-08-15"})
		require.NoError(t, err)

		assert.Equal(t, "activity-logs-2026-08-01-to-2026-08-15.json", response.ObjectName)
		assert.Equal(t, 2, response.Entries)

		var archived []models.ActivityLog
		require.NoError(t, json.Unmarshal(storage.data, &archived))
		assert.Len(t, archived, 2)
	})

	t.Run("Upload failure surfaces to the caller", func(t *testing.T) {
		repo := &fakeActivityLogRepository{}
		storage := &fakeArchiveStorage{uploadErr: exceptions.ErrMinioCreateObject(assert.AnError, "archives")}
		usecase := NewActivityLogUsecase(repo, storage, zap.NewNop())

		_, err := usecase.Archive(ctx, &requests.ArchiveActivityLogs{From: "2026-08-01", To: "2026-08-15"})
		require.Error(t, err)
		assert.Equal(t, 500, exceptions.StatusCodeOf(err))
	})
}

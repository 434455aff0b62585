package contracts

import "context"

type ArchiveStorage interface {
	UploadJSON(ctx context.Context, objectName string, data []byte) (string, error)
}

package contracts

import (
	"context"
	"io"
	"time"
)

type StorageRepository interface {
	Upload(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
	PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

package interfaces

import (
	"context"
	"io"
	"time"
)

// IArtworkStorage abstracts object storage (S3) for order artwork files.
type IArtworkStorage interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

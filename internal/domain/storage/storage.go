package storage

import (
	"context"
	"io"
)

// Uploader stores an object and returns a URL that clients can fetch it from.
type Uploader interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) (string, error)
}

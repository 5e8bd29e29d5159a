// Package storage keeps binary uploads such as attendance photos.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid file path")
)

// Backend names accepted by configuration.
const (
	BackendLocal = "local"
	BackendMinIO = "minio"
)

type FileStorage interface {
	// Upload stores the content under key and returns the normalised key.
	Upload(ctx context.Context, file io.Reader, key string, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
	// GetURL returns a URL a browser can fetch. expiry is ignored by
	// backends that serve public URLs.
	GetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

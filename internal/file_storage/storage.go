package filestorage

import (
	"context"
	"fmt"

	"github.com/sovanra/uxfolio/internal/config"
	"go.uber.org/zap"
)

// Storage persists derived size-variant blobs. Paths are storage-relative,
// forward-slash separated, e.g. "<projectId>/<variantFileName>".
type Storage interface {
	// Save writes the blob and returns its public URL.
	Save(ctx context.Context, path string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, path string) error
}

// NewStorage selects the configured backend: local disk by default, an
// S3-compatible object store when STORAGE_DRIVER=s3.
func NewStorage(cfg *config.StorageConfig, logger *zap.SugaredLogger) (Storage, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalStorage(cfg.UploadsDir, cfg.BaseURL)
	case "s3":
		return NewMinioStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

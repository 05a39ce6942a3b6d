package filestorage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sovanra/uxfolio/internal/config"
	"go.uber.org/zap"
)

// MinioStorage keeps variants in an S3-compatible bucket.
type MinioStorage struct {
	client *minio.Client
	bucket string
	logger *zap.SugaredLogger
}

var _ Storage = (*MinioStorage)(nil)

func NewMinioStorage(cfg *config.StorageConfig, logger *zap.SugaredLogger) (*MinioStorage, error) {
	client, err := minio.New(cfg.Minio.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.ACCESS_KEY, cfg.Minio.SECRET_KEY, ""),
		Secure: cfg.Minio.USE_SSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}

	return &MinioStorage{
		client: client,
		bucket: cfg.Minio.BUCKET,
		logger: logger,
	}, nil
}

func (m *MinioStorage) createBucketIfNotExists(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}

	if !exists {
		err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return err
		}
	}

	return nil
}

func (m *MinioStorage) Save(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if err := m.createBucketIfNotExists(ctx); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	_, err := m.client.PutObject(ctx, m.bucket, path, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to upload variant to S3: %w", err)
	}

	return m.client.EndpointURL().String() + "/" + m.bucket + "/" + path, nil
}

func (m *MinioStorage) Remove(ctx context.Context, path string) error {
	return m.client.RemoveObject(ctx, m.bucket, path, minio.RemoveObjectOptions{})
}

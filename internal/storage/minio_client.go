package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"imagestorebot/internal/config"
)

// Storage keeps a copy of approved photos outside the messaging platform.
type Storage interface {
	ArchivePhoto(ctx context.Context, fileReference string, file io.Reader, size int64) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	bucket string
}

func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("error checking bucket %s: %w", cfg.MinIO.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", cfg.MinIO.BucketName, err)
		}
	}

	return &MinIOClient{client: client, bucket: cfg.MinIO.BucketName}, nil
}

func objectName(now time.Time, id uuid.UUID) string {
	return fmt.Sprintf("approved/%d/%02d/%s.jpg", now.Year(), now.Month(), id.String())
}

func (m *MinIOClient) ArchivePhoto(ctx context.Context, fileReference string, file io.Reader, size int64) (string, error) {
	now := time.Now()
	name := objectName(now, uuid.New())

	_, err := m.client.PutObject(ctx, m.bucket, name, file, size,
		minio.PutObjectOptions{
			ContentType: "image/jpeg",
			UserMetadata: map[string]string{
				"file-reference": fileReference,
				"approved-at":    now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("error uploading to MinIO: %w", err)
	}

	return name, nil
}

package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"albumstore/internal/config"
)

type Storage interface {
	UploadAlbumArchive(ctx context.Context, slug string, file io.Reader, size int64) (string, error)
	PresignDownloadURL(ctx context.Context, objectName string) (string, error)
}

type MinIOClient struct {
	client *minio.Client
	cfg    *config.Config
}

func NewMinIOClient(cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации MinIO-клиента: %w", err)
	}

	return &MinIOClient{client: client, cfg: cfg}, nil
}

// UploadAlbumArchive uploads to the conventional path {slug}/release.zip.
// PutObject overwrites an existing object, which gives the upsert semantics.
func (m *MinIOClient) UploadAlbumArchive(ctx context.Context, slug string, file io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s/release.zip", slug)

	_, err := m.client.PutObject(ctx, m.cfg.MinIO.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: "application/zip",
			UserMetadata: map[string]string{
				"album-slug":  slug,
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}

func (m *MinIOClient) PresignDownloadURL(ctx context.Context, objectName string) (string, error) {
	presigned, err := m.client.PresignedGetObject(ctx, m.cfg.MinIO.BucketName, objectName, m.cfg.MinIO.URLExpiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("ошибка генерации ссылки на скачивание: %w", err)
	}

	return presigned.String(), nil
}

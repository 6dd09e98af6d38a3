package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"jokepatra/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrNotConfigured = errors.New("image storage is not configured (MINIO_ENDPOINT)")

type Storage interface {
	UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error)
	DeleteImage(ctx context.Context, objectName string) error
	// ObjectName maps a public URL back to its object, reporting false for URLs
	// outside the bucket.
	ObjectName(url string) (string, bool)
}

type MinIOClient struct {
	client *minio.Client
	config config.MinIO
}

func NewMinIOClient(cfg config.MinIO) (*MinIOClient, error) {
	if cfg.Endpoint == "" {
		return nil, ErrNotConfigured
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// EnsureBucket creates the bucket on first start and opens it for anonymous
// reads so stored URLs can be embedded in public pages.
func (m *MinIOClient) EnsureBucket(ctx context.Context) error {
	bucket := m.config.BucketName

	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
			return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [{
			"Effect": "Allow",
			"Principal": {"AWS": ["*"]},
			"Action": ["s3:GetObject"],
			"Resource": ["arn:aws:s3:::%s/*"]
		}]
	}`, bucket)

	if err := m.client.SetBucketPolicy(ctx, bucket, policy); err != nil {
		return fmt.Errorf("failed to set bucket policy: %w", err)
	}

	return nil
}

func (m *MinIOClient) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	now := time.Now().UTC()
	objectName := buildObjectName(fileName, contentType, now)

	_, err := m.client.PutObject(ctx, m.config.BucketName, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": filepath.Base(fileName),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return objectName, publicURL(m.config, objectName), nil
}

func (m *MinIOClient) DeleteImage(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete from MinIO: %w", err)
	}
	return nil
}

func (m *MinIOClient) ObjectName(url string) (string, bool) {
	prefix := publicURL(m.config, "")
	if !strings.HasPrefix(url, prefix) || len(url) == len(prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}

func buildObjectName(fileName, contentType string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
			ext = exts[0]
		} else {
			ext = ".jpg"
		}
	}

	return fmt.Sprintf("featured/%d/%02d/%s%s",
		now.Year(),
		now.Month(),
		uuid.New().String(),
		ext)
}

func publicURL(cfg config.MinIO, objectName string) string {
	if cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(cfg.PublicBaseURL, "/"), cfg.BucketName, objectName)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, cfg.BucketName, objectName)
}

// Disabled is used when no endpoint is configured; uploads fail with
// ErrNotConfigured while the rest of the site keeps working.
func Disabled() Storage {
	return disabled{}
}

type disabled struct{}

func (disabled) UploadImage(context.Context, string, string, io.Reader, int64) (string, string, error) {
	return "", "", ErrNotConfigured
}

func (disabled) DeleteImage(context.Context, string) error {
	return ErrNotConfigured
}

func (disabled) ObjectName(string) (string, bool) {
	return "", false
}

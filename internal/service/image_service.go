package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"jokepatra/internal/storage"
)

var ErrInvalidImage = errors.New("invalid image")

type ImageService interface {
	Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error)
	Discard(ctx context.Context, url string) error
}

type imageService struct {
	storage storage.Storage
	maxSize int64
}

func NewImageService(store storage.Storage, maxSize int64) ImageService {
	return &imageService{storage: store, maxSize: maxSize}
}

// Upload stores a featured image and returns its public URL.
func (s *imageService) Upload(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: only image files are allowed", ErrInvalidImage)
	}
	if size <= 0 {
		return "", fmt.Errorf("%w: file is empty", ErrInvalidImage)
	}
	if size > s.maxSize {
		return "", fmt.Errorf("%w: file must be at most %d MB", ErrInvalidImage, s.maxSize>>20)
	}

	_, url, err := s.storage.UploadImage(ctx, fileName, contentType, file, size)
	if err != nil {
		return "", err
	}

	return url, nil
}

// Discard removes a stored image by its public URL. URLs that do not point into
// the bucket are left alone.
func (s *imageService) Discard(ctx context.Context, url string) error {
	objectName, ok := s.storage.ObjectName(url)
	if !ok {
		return nil
	}

	return s.storage.DeleteImage(ctx, objectName)
}

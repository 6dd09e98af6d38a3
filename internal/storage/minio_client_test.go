package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jokepatra/internal/config"
)

func TestBuildObjectName(t *testing.T) {
	now := time.Date(2026, time.March, 7, 10, 0, 0, 0, time.UTC)

	t.Run("extension from file name", func(t *testing.T) {
		name := buildObjectName("Pothole.PNG", "image/png", now)

		assert.True(t, strings.HasPrefix(name, "featured/2026/03/"))
		assert.True(t, strings.HasSuffix(name, ".png"))
	})

	t.Run("extension from content type", func(t *testing.T) {
		name := buildObjectName("blob", "image/png", now)

		assert.True(t, strings.HasSuffix(name, ".png"))
	})

	t.Run("unique names", func(t *testing.T) {
		assert.NotEqual(t, buildObjectName("a.jpg", "image/jpeg", now), buildObjectName("a.jpg", "image/jpeg", now))
	})
}

func TestPublicURL(t *testing.T) {
	cfg := config.MinIO{Endpoint: "localhost:9000", BucketName: "featured-images"}

	assert.Equal(t, "http://localhost:9000/featured-images/featured/x.jpg", publicURL(cfg, "featured/x.jpg"))

	cfg.UseSSL = true
	assert.Equal(t, "https://localhost:9000/featured-images/featured/x.jpg", publicURL(cfg, "featured/x.jpg"))

	cfg.PublicBaseURL = "https://cdn.jokepatra.com/"
	assert.Equal(t, "https://cdn.jokepatra.com/featured-images/featured/x.jpg", publicURL(cfg, "featured/x.jpg"))
}

func TestNewMinIOClient(t *testing.T) {
	_, err := NewMinIOClient(config.MinIO{})
	assert.ErrorIs(t, err, ErrNotConfigured)

	client, err := NewMinIOClient(config.MinIO{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b", BucketName: "featured-images"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestMinIOClient_ObjectName(t *testing.T) {
	client, err := NewMinIOClient(config.MinIO{
		Endpoint:      "localhost:9000",
		AccessKey:     "a",
		SecretKey:     "b",
		BucketName:    "featured-images",
		PublicBaseURL: "https://cdn.jokepatra.com",
	})
	require.NoError(t, err)

	tests := []struct {
		url    string
		object string
		ok     bool
	}{
		{"https://cdn.jokepatra.com/featured-images/featured/2026/10/abc.png", "featured/2026/10/abc.png", true},
		{"https://cdn.jokepatra.com/featured-images/", "", false},
		{"https://cdn.jokepatra.com/other-bucket/abc.png", "", false},
		{"https://images.example.com/featured-images/abc.png", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		object, ok := client.ObjectName(tt.url)
		assert.Equal(t, tt.ok, ok, tt.url)
		assert.Equal(t, tt.object, object, tt.url)
	}
}

func TestDisabled(t *testing.T) {
	_, _, err := Disabled().UploadImage(context.Background(), "a.jpg", "image/jpeg", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrNotConfigured)

	assert.ErrorIs(t, Disabled().DeleteImage(context.Background(), "featured/a.jpg"), ErrNotConfigured)

	_, ok := Disabled().ObjectName("http://localhost:9000/featured-images/featured/a.jpg")
	assert.False(t, ok)
}

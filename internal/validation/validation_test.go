package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestValidateLogin(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		req      LoginRequest
		wantErr  bool
		contains []string
	}{
		{
			name: "valid",
			req:  LoginRequest{Email: "admin@jokepatra.com", Password: "changeme123"},
		},
		{
			name:     "bad email",
			req:      LoginRequest{Email: "not-an-email", Password: "changeme123"},
			wantErr:  true,
			contains: []string{"email must be a valid email address"},
		},
		{
			name:     "short password",
			req:      LoginRequest{Email: "admin@jokepatra.com", Password: "123"},
			wantErr:  true,
			contains: []string{"password must be at least 6 characters in length"},
		},
		{
			name:     "both missing",
			req:      LoginRequest{},
			wantErr:  true,
			contains: []string{"email is a required field", "password is a required field"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(&tt.req)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, msg := range tt.contains {
				assert.Contains(t, err.Error(), msg)
			}
		})
	}
}

func TestValidateLogin_JoinsMessages(t *testing.T) {
	err := New().ValidateLogin(&LoginRequest{})

	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Messages, 2)
	assert.Equal(t, strings.Join(verr.Messages, ", "), err.Error())
}

func TestValidateGenerate(t *testing.T) {
	v := New()

	t.Run("publish defaults to false", func(t *testing.T) {
		req := GenerateRequest{Prompt: "Write about potholes in Kathmandu"}
		require.NoError(t, v.ValidateGenerate(&req))
		assert.False(t, req.Publish)
	})

	t.Run("prompt too short", func(t *testing.T) {
		err := v.ValidateGenerate(&GenerateRequest{Prompt: "short"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt must be at least 10 characters in length")
	})

	t.Run("prompt too long", func(t *testing.T) {
		err := v.ValidateGenerate(&GenerateRequest{Prompt: strings.Repeat("a", 2001)})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt must be a maximum of")
	})

	t.Run("prompt missing", func(t *testing.T) {
		err := v.ValidateGenerate(&GenerateRequest{})
		require.Error(t, err)
		assert.Equal(t, "prompt is a required field", err.Error())
	})

	t.Run("blank featured image dropped", func(t *testing.T) {
		req := GenerateRequest{Prompt: "Write about potholes", FeaturedImage: ptr("  ")}
		require.NoError(t, v.ValidateGenerate(&req))
		assert.Nil(t, req.FeaturedImage)
	})

	t.Run("featured image must be a url", func(t *testing.T) {
		err := v.ValidateGenerate(&GenerateRequest{Prompt: "Write about potholes", FeaturedImage: ptr("not a url")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "featured_image")
	})
}

func validArticle() ArticleRequest {
	return ArticleRequest{
		Title:   "Minister Inaugurates Pothole",
		Slug:    "minister-inaugurates-pothole",
		Content: "<p>The ribbon was cut with great ceremony.</p>",
	}
}

func TestValidateArticle_Defaults(t *testing.T) {
	req := validArticle()

	require.NoError(t, New().ValidateArticle(&req))

	assert.Equal(t, "en", req.Language)
	assert.NotNil(t, req.Tags)
	assert.Empty(t, req.Tags)
}

func TestValidateArticle_Violations(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(r *ArticleRequest)
		want   string
	}{
		{"missing title", func(r *ArticleRequest) { r.Title = "" }, "title is a required field"},
		{"short title", func(r *ArticleRequest) { r.Title = "Hey" }, "title must be at least 5 characters in length"},
		{"missing slug", func(r *ArticleRequest) { r.Slug = "" }, "slug is a required field"},
		{"uppercase slug", func(r *ArticleRequest) { r.Slug = "Bad-Slug" }, "slug may only contain lowercase letters, numbers and hyphens"},
		{"slug with spaces", func(r *ArticleRequest) { r.Slug = "bad slug" }, "slug may only contain lowercase letters, numbers and hyphens"},
		{"missing content", func(r *ArticleRequest) { r.Content = "" }, "content is a required field"},
		{"short content", func(r *ArticleRequest) { r.Content = "<p>tiny</p>" }, "content must be at least 20 characters in length"},
		{"long summary", func(r *ArticleRequest) { r.Summary = ptr(strings.Repeat("s", 501)) }, "summary must be a maximum of 500 characters in length"},
		{"unknown language", func(r *ArticleRequest) { r.Language = "fr" }, "language must be one of [en ne]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validArticle()
			tt.mutate(&req)

			err := v.ValidateArticle(&req)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateArticle_NepaliAndOptionalFields(t *testing.T) {
	req := validArticle()
	req.Language = "ne"
	req.Summary = ptr("")
	req.Tags = []string{"politics", "roads"}
	req.FeaturedImage = ptr("https://cdn.example.com/pothole.jpg")

	assert.NoError(t, New().ValidateArticle(&req))
}

func TestValidatePublish(t *testing.T) {
	v := New()

	assert.NoError(t, v.ValidatePublish(&PublishRequest{ID: "a1", Publish: ptr(false)}))

	err := v.ValidatePublish(&PublishRequest{Publish: ptr(true)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is a required field")

	err = v.ValidatePublish(&PublishRequest{ID: "a1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish is a required field")
}

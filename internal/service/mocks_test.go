package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"jokepatra/internal/gemini"
	"jokepatra/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpsertUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepository) List(ctx context.Context, limit, offset int) ([]models.Article, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Int(1), args.Error(2)
}

func (m *MockArticleRepository) Update(ctx context.Context, article *models.Article) (*models.Article, *string, error) {
	args := m.Called(ctx, article)
	var previous *string
	if p := args.Get(1); p != nil {
		previous = p.(*string)
	}
	if args.Get(0) == nil {
		return nil, previous, args.Error(2)
	}
	return args.Get(0).(*models.Article), previous, args.Error(2)
}

func (m *MockArticleRepository) SetPublishedAt(ctx context.Context, articleID string, publishedAt *time.Time) (*models.Article, error) {
	args := m.Called(ctx, articleID, publishedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) Delete(ctx context.Context, articleID string) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

type MockPublicArticleRepository struct {
	mock.Mock
}

func (m *MockPublicArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.Article, int, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Article), args.Int(1), args.Error(2)
}

func (m *MockPublicArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

type MockTablesRepository struct {
	mock.Mock
}

func (m *MockTablesRepository) CountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, custom string) (*gemini.GeneratedArticle, error) {
	args := m.Called(ctx, custom)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gemini.GeneratedArticle), args.Error(1)
}

func (m *MockGenerator) Source() string {
	return "Gemini gemini-test"
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, contentType, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) ObjectName(url string) (string, bool) {
	args := m.Called(url)
	return args.String(0), args.Bool(1)
}

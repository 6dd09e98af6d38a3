package repository

import (
	"context"
	"errors"
	"time"

	"jokepatra/internal/database"
	"jokepatra/internal/models"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlug = errors.New("slug already exists")
)

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpsertUser(ctx context.Context, user *models.User) error
}

// ArticleRepository runs on the privileged handle.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	List(ctx context.Context, limit, offset int) ([]models.Article, int, error)
	Update(ctx context.Context, article *models.Article) (*models.Article, *string, error)
	SetPublishedAt(ctx context.Context, articleID string, publishedAt *time.Time) (*models.Article, error)
	Delete(ctx context.Context, articleID string) error
}

// PublicArticleRepository runs on the read-only handle and never returns drafts.
type PublicArticleRepository interface {
	ListPublished(ctx context.Context, limit, offset int) ([]models.Article, int, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User          UserRepository
	Article       ArticleRepository
	PublicArticle PublicArticleRepository
	Tables        TablesRepository
}

func NewRepository(handles *database.Handles) *Repository {
	return &Repository{
		User:          NewUserRepository(handles.Service.DB),
		Article:       NewArticleRepository(handles.Service.DB),
		PublicArticle: NewPublicArticleRepository(handles.Public.DB),
		Tables:        NewTablesRepository(handles.Public.DB),
	}
}

const articleColumns = `id, title, slug, summary, content, tags, language, satire,
	published_at, source, prompt_used, featured_image, author_id, created_at, updated_at`

// articleRow carries the window count next to each row so a page and its total
// come back from a single query.
type articleRow struct {
	models.Article
	Total int `db:"total"`
}

type updatedRow struct {
	models.Article
	PreviousImage *string `db:"previous_image"`
}

func splitRows(rows []articleRow) ([]models.Article, int) {
	articles := make([]models.Article, 0, len(rows))
	total := 0
	for _, row := range rows {
		articles = append(articles, row.Article)
		total = row.Total
	}
	return articles, total
}

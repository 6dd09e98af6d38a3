package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jokepatra/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type articleRepository struct {
	db *sqlx.DB
}

func NewArticleRepository(db *sqlx.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	query := `
		INSERT INTO articles
		(id, title, slug, summary, content, tags, language, satire, published_at,
		 source, prompt_used, featured_image, author_id, created_at, updated_at)
		VALUES
		(:id, :title, :slug, :summary, :content, :tags, :language, :satire, :published_at,
		 :source, :prompt_used, :featured_image, :author_id, :created_at, :updated_at)
	`

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	if article.Tags == nil {
		article.Tags = pq.StringArray{}
	}

	now := time.Now().UTC()
	article.CreatedAt = now
	article.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, query, article); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", ErrDuplicateSlug, err)
		}
		return fmt.Errorf("failed to create article: %w", err)
	}

	return nil
}

func (r *articleRepository) List(ctx context.Context, limit, offset int) ([]models.Article, int, error) {
	query := `SELECT ` + articleColumns + `, COUNT(*) OVER() AS total
		FROM articles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list articles: %w", err)
	}

	articles, total := splitRows(rows)
	return articles, total, nil
}

// Update overwrites every editable field and also returns the featured image
// the row held before, read in the same statement. There is no existence
// pre-check: an unknown id simply returns no row.
func (r *articleRepository) Update(ctx context.Context, article *models.Article) (*models.Article, *string, error) {
	query := `
		WITH previous AS (
			SELECT featured_image FROM articles WHERE id = :id
		)
		UPDATE articles SET
			title = :title,
			slug = :slug,
			summary = :summary,
			content = :content,
			tags = :tags,
			language = :language,
			featured_image = :featured_image,
			updated_at = :updated_at
		WHERE id = :id
		RETURNING ` + articleColumns + `, (SELECT featured_image FROM previous) AS previous_image`

	if article.Tags == nil {
		article.Tags = pq.StringArray{}
	}
	article.UpdatedAt = time.Now().UTC()

	bound, args, err := r.db.BindNamed(query, article)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to update article: %w", err)
	}

	var updated updatedRow
	if err := r.db.GetContext(ctx, &updated, bound, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("article %s: %w", article.ID, ErrNotFound)
		}
		if isUniqueViolation(err) {
			return nil, nil, fmt.Errorf("%w: %v", ErrDuplicateSlug, err)
		}
		return nil, nil, fmt.Errorf("failed to update article: %w", err)
	}

	return &updated.Article, updated.PreviousImage, nil
}

func (r *articleRepository) SetPublishedAt(ctx context.Context, articleID string, publishedAt *time.Time) (*models.Article, error) {
	query := `
		UPDATE articles SET
			published_at = $1,
			updated_at = $2
		WHERE id = $3
		RETURNING ` + articleColumns

	var updated models.Article
	err := r.db.GetContext(ctx, &updated, query, publishedAt, time.Now().UTC(), articleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %s: %w", articleID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to change publish state: %w", err)
	}

	return &updated, nil
}

// Delete does not report whether a row matched.
func (r *articleRepository) Delete(ctx context.Context, articleID string) error {
	query := `DELETE FROM articles WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, articleID); err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"jokepatra/internal/models"

	"github.com/jmoiron/sqlx"
)

type publicArticleRepository struct {
	db *sqlx.DB
}

func NewPublicArticleRepository(db *sqlx.DB) PublicArticleRepository {
	return &publicArticleRepository{db: db}
}

func (r *publicArticleRepository) ListPublished(ctx context.Context, limit, offset int) ([]models.Article, int, error) {
	query := `SELECT ` + articleColumns + `, COUNT(*) OVER() AS total
		FROM articles
		WHERE published_at IS NOT NULL
		ORDER BY published_at DESC
		LIMIT $1 OFFSET $2`

	var rows []articleRow
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list published articles: %w", err)
	}

	articles, total := splitRows(rows)
	return articles, total, nil
}

func (r *publicArticleRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Article, error) {
	query := `SELECT ` + articleColumns + `
		FROM articles
		WHERE slug = $1 AND published_at IS NOT NULL`

	var article models.Article
	if err := r.db.GetContext(ctx, &article, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("article %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return &article, nil
}

package service

import (
	"context"
	"time"

	"jokepatra/internal/models"
	"jokepatra/internal/repository"
	"jokepatra/internal/validation"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const (
	DefaultAdminLimit  = 20
	DefaultPublicLimit = 10
	MaxLimit           = 100

	dailyPrompt = "Daily automated generation"
	dailySuffix = " (Auto)"
)

type GenerateInput struct {
	Prompt        string
	Publish       bool
	FeaturedImage *string
	AuthorID      string
}

type ArticleService interface {
	ListAll(ctx context.Context, limit, offset int) (*models.ArticleList, error)
	ListPublished(ctx context.Context, limit, offset int) (*models.ArticleList, error)
	GetPublished(ctx context.Context, slug string) (*models.Article, error)
	Generate(ctx context.Context, in GenerateInput) (*models.Article, error)
	GenerateDaily(ctx context.Context) (*models.Article, error)
	Update(ctx context.Context, articleID string, req validation.ArticleRequest) (*models.Article, error)
	SetPublished(ctx context.Context, articleID string, publish bool) (*models.Article, error)
	Delete(ctx context.Context, articleID string) error
}

type articleService struct {
	articleRepo repository.ArticleRepository
	publicRepo  repository.PublicArticleRepository
	generator   Generator
	images      ImageService
	logger      *zap.Logger
	now         func() time.Time
}

func NewArticleService(articleRepo repository.ArticleRepository, publicRepo repository.PublicArticleRepository, generator Generator, images ImageService, logger *zap.Logger) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		publicRepo:  publicRepo,
		generator:   generator,
		images:      images,
		logger:      logger,
		now:         time.Now,
	}
}

// NormalizePage clamps limit to 1..MaxLimit, using def for non-positive
// values, and floors offset at zero.
func NormalizePage(limit, offset, def int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *articleService) ListAll(ctx context.Context, limit, offset int) (*models.ArticleList, error) {
	limit, offset = NormalizePage(limit, offset, DefaultAdminLimit)

	articles, total, err := s.articleRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.ArticleList{Articles: articles, Total: total}, nil
}

func (s *articleService) ListPublished(ctx context.Context, limit, offset int) (*models.ArticleList, error) {
	limit, offset = NormalizePage(limit, offset, DefaultPublicLimit)

	articles, total, err := s.publicRepo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &models.ArticleList{Articles: articles, Total: total}, nil
}

func (s *articleService) GetPublished(ctx context.Context, slug string) (*models.Article, error) {
	return s.publicRepo.GetPublishedBySlug(ctx, slug)
}

func (s *articleService) Generate(ctx context.Context, in GenerateInput) (*models.Article, error) {
	generated, err := s.generator.Generate(ctx, in.Prompt)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:         generated.Title,
		Slug:          generated.Slug,
		Summary:       optional(generated.Summary),
		Content:       generated.ContentHTML,
		Tags:          pq.StringArray(generated.Tags),
		Language:      generated.Language,
		Satire:        true,
		Source:        optional(s.generator.Source()),
		PromptUsed:    optional(in.Prompt),
		FeaturedImage: in.FeaturedImage,
		AuthorID:      optional(in.AuthorID),
	}
	if in.Publish {
		now := s.now().UTC()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

// GenerateDaily publishes one article from the built-in brief.
func (s *articleService) GenerateDaily(ctx context.Context) (*models.Article, error) {
	generated, err := s.generator.Generate(ctx, "")
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	article := &models.Article{
		Title:       generated.Title,
		Slug:        generated.Slug,
		Summary:     optional(generated.Summary),
		Content:     generated.ContentHTML,
		Tags:        pq.StringArray(generated.Tags),
		Language:    generated.Language,
		Satire:      true,
		PublishedAt: &now,
		Source:      optional(s.generator.Source() + dailySuffix),
		PromptUsed:  optional(dailyPrompt),
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		return nil, err
	}

	return article, nil
}

func (s *articleService) Update(ctx context.Context, articleID string, req validation.ArticleRequest) (*models.Article, error) {
	article := &models.Article{
		ID:            articleID,
		Title:         req.Title,
		Slug:          req.Slug,
		Summary:       req.Summary,
		Content:       req.Content,
		Tags:          pq.StringArray(req.Tags),
		Language:      req.Language,
		FeaturedImage: req.FeaturedImage,
	}

	updated, previousImage, err := s.articleRepo.Update(ctx, article)
	if err != nil {
		return nil, err
	}

	if replacedImage(previousImage, updated.FeaturedImage) {
		if err := s.images.Discard(ctx, *previousImage); err != nil {
			s.logger.Warn("failed to remove replaced image",
				zap.String("article_id", articleID),
				zap.String("url", *previousImage),
				zap.Error(err),
			)
		}
	}

	return updated, nil
}

func replacedImage(previous, current *string) bool {
	if previous == nil || *previous == "" {
		return false
	}
	return current == nil || *current != *previous
}

func (s *articleService) SetPublished(ctx context.Context, articleID string, publish bool) (*models.Article, error) {
	var publishedAt *time.Time
	if publish {
		now := s.now().UTC()
		publishedAt = &now
	}

	return s.articleRepo.SetPublishedAt(ctx, articleID, publishedAt)
}

func (s *articleService) Delete(ctx context.Context, articleID string) error {
	return s.articleRepo.Delete(ctx, articleID)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

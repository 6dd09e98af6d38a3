package service

import (
	"context"

	"jokepatra/internal/auth"
	"jokepatra/internal/config"
	"jokepatra/internal/gemini"
	"jokepatra/internal/repository"
	"jokepatra/internal/storage"

	"go.uber.org/zap"
)

// Generator produces one article per call. *gemini.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, custom string) (*gemini.GeneratedArticle, error)
	Source() string
}

type Service struct {
	Auth    AuthService
	Article ArticleService
	Image   ImageService
	Health  HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, tokens *auth.TokenManager, generator Generator, store storage.Storage, logger *zap.Logger) *Service {
	images := NewImageService(store, cfg.MaxUploadSize)

	return &Service{
		Auth:    NewAuthService(rep.User, tokens),
		Article: NewArticleService(rep.Article, rep.PublicArticle, generator, images, logger),
		Image:   images,
		Health:  NewHealthService(rep.Tables),
	}
}

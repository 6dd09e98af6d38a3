package app

import (
	"context"
	"errors"
	"time"

	"jokepatra/internal/auth"
	"jokepatra/internal/config"
	"jokepatra/internal/database"
	"jokepatra/internal/gemini"
	"jokepatra/internal/repository"
	"jokepatra/internal/service"
	"jokepatra/internal/storage"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a development logger for APP_ENV=development and a
// production one otherwise, at LOG_LEVEL.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Env == "development" {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}

// Repository opens the database. Missing settings do not stop the process:
// every repository call answers with the configuration error instead.
func Repository(cfg *config.Config, logger *zap.Logger) (*database.Handles, *repository.Repository) {
	handles, err := database.Open(cfg, logger)
	if err != nil {
		if errors.Is(err, database.ErrNotConfigured) {
			logger.Error("database is not configured, data routes will fail", zap.Error(err))
			return nil, repository.Unavailable(err)
		}
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	return handles, repository.NewRepository(handles)
}

func Storage(cfg *config.Config, logger *zap.Logger) storage.Storage {
	client, err := storage.NewMinIOClient(cfg.MinIO)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			logger.Warn("image storage disabled", zap.Error(err))
			return storage.Disabled()
		}
		logger.Fatal("failed to initialise MinIO", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.EnsureBucket(ctx); err != nil {
		logger.Error("bucket setup failed, uploads may not work", zap.Error(err))
	}

	return client
}

func App(cfg *config.Config, logger *zap.Logger) (*database.Handles, *service.Service) {
	handles, repo := Repository(cfg, logger)

	generator := gemini.NewClient(cfg.Gemini, logger.Named("gemini"))
	if cfg.Gemini.APIKey == "" {
		logger.Warn("GEMINI_API_KEY is not set, generation will fail")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecretKey, cfg.TokenDuration)

	services := service.NewService(repo, cfg, tokens, generator, Storage(cfg, logger), logger)

	return handles, services
}

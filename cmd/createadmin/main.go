package main

import (
	"context"
	"log"

	"jokepatra/cmd/app"
	"jokepatra/internal/auth"
	"jokepatra/internal/config"
	"jokepatra/internal/database"
	"jokepatra/internal/models"
	"jokepatra/internal/repository"

	"go.uber.org/zap"
)

// createadmin upserts the ADMIN_EMAIL account with the hash of ADMIN_PASSWORD.
func main() {
	cfg := config.LoadConfig()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if len(cfg.Admin.Password) < 6 {
		logger.Fatal("ADMIN_PASSWORD must be at least 6 characters")
	}

	handles, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer handles.Close()

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	user := &models.User{
		Email:    cfg.Admin.Email,
		Password: hash,
		Role:     models.RoleAdmin,
	}

	users := repository.NewUserRepository(handles.Service.DB)
	if err := users.UpsertUser(context.Background(), user); err != nil {
		logger.Fatal("failed to create admin user", zap.Error(err))
	}

	logger.Info("admin user ready", zap.String("email", user.Email))
}

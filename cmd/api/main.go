package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"jokepatra/cmd/app"
	"jokepatra/internal/config"
	handlers "jokepatra/internal/handler"
	"jokepatra/internal/server"
	"jokepatra/internal/web"

	"go.uber.org/zap"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.JWTSecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY is not set")
	}

	handles, services := app.App(cfg, logger)
	defer handles.Close()

	handler := handlers.NewHandlers(services, cfg, logger)
	site := web.NewSite(services.Article, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           server.NewRouter(handler, site, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Starting the server
	logger.Info("server started",
		zap.String("addr", srv.Addr),
		zap.String("database", cfg.DB.DbNAME),
		zap.String("env", cfg.Env),
	)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", zap.Error(err))
	}
}

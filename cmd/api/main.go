package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/portfolio-studio/showcase/internal/api"
	"github.com/portfolio-studio/showcase/internal/api/handlers"
	"github.com/portfolio-studio/showcase/internal/api/validators"
	"github.com/portfolio-studio/showcase/internal/repository"
	"github.com/portfolio-studio/showcase/internal/services"
	"github.com/portfolio-studio/showcase/pkg/config"
	"github.com/portfolio-studio/showcase/pkg/database"
	"github.com/portfolio-studio/showcase/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting showcase engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
		zap.String("database", cfg.DatabasePath),
		zap.String("static_dir", cfg.StaticDir),
	)

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, cfg.DatabasePath, cfg.AppEnv)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("database close error", zap.Error(err))
		}
	}()

	// Schema and seed rows must exist before the first request is accepted.
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}
	projectSvc := services.NewProjectService(repository.NewProjectRepository(db), validators.New())
	if _, err := projectSvc.Bootstrap(ctx); err != nil {
		log.Fatal("Failed to seed projects", zap.Error(err))
	}
	log.Info("Database ready")

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access connection pool", zap.Error(err))
	}

	router := api.NewRouter(api.Dependencies{
		ProjectsHandler:   handlers.NewProjectsHandler(projectSvc, cfg.MaxBodyBytes),
		StaticHandler:     handlers.NewStaticHandler(cfg.StaticDir, cfg.IndexFile),
		HealthHandler:     handlers.NewHealthHandler(sqlDB),
		AllowedOrigins:    cfg.AllowedOrigins(),
		RateLimitRPS:      cfg.RateLimitRPS,
		RateLimitBurst:    cfg.RateLimitBurst,
		TrustProxyHeaders: cfg.TrustProxyHeaders,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}

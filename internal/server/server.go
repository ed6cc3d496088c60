// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package server wires configuration, storage and services into the HTTP
// server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/config"
	"github.com/shulsign/onboarding/internal/database"
	"github.com/shulsign/onboarding/internal/handlers"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/services/dashboard"
	"github.com/shulsign/onboarding/internal/services/mailer"
	"github.com/shulsign/onboarding/internal/services/signup"
	"github.com/shulsign/onboarding/internal/storage"
	"github.com/urfave/cli/v3"
)

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"base_url", cfg.Server.BaseURL,
		"smtp_configured", cfg.SMTP.Configured(),
	)

	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	repo := repository.New(db)
	store := storage.New(cfg.Storage.Dir, cfg.Storage.PublicPath)
	mail := mailer.NewService(&cfg.SMTP)

	signupSvc := signup.NewService(repo, mail, cfg.Server.BaseURL)
	dashboardSvc := dashboard.NewService(repo)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	setupMiddleware(e, cfg)
	setupRoutes(e, cfg, handlers.New(signupSvc, dashboardSvc, repo, store))

	return startWithGracefulShutdown(ctx, e, cfg)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, h *handlers.Handlers) {
	// Uploaded images are served directly from the blob store directory.
	e.Static(cfg.Storage.PublicPath, cfg.Storage.Dir)

	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.POST("/signup", h.Signup)
	api.GET("/dashboard", h.Dashboard)
	api.PATCH("/user", h.UpdateProfile)
	api.POST("/upload", h.UploadImage)

	api.GET("/load/:admin_key", h.LoadSynagogue)
	api.POST("/save/:admin_key", h.SaveSynagogue)
	api.POST("/upload/:admin_key", h.UploadSynagogueImages)
	api.POST("/delete-pic/:admin_key", h.DeleteSynagogueImage)
	api.GET("/emergency-companies", h.ListEmergencyCompanies)
	api.GET("/layouts", h.ListLayouts)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	errChan := make(chan error, 1)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	go func() {
		slog.Info("server running", "url", cfg.Server.BaseURL)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("shutting down server")
	case <-ctx.Done():
		slog.Info("shutting down server")
	case err := <-errChan:
		slog.Error("server error", "error", err)
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown server", "error", err)
	}

	slog.Info("server stopped")
	return nil
}

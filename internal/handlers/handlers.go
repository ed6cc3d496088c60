// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers of the onboarding API.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/services/dashboard"
	"github.com/shulsign/onboarding/internal/services/signup"
	"github.com/shulsign/onboarding/internal/storage"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	signup    *signup.Service
	dashboard *dashboard.Service
	repo      *repository.Repository
	store     *storage.Store
}

// New creates a new Handlers instance.
func New(signupSvc *signup.Service, dashboardSvc *dashboard.Service, repo *repository.Repository, store *storage.Store) *Handlers {
	return &Handlers{
		signup:    signupSvc,
		dashboard: dashboardSvc,
		repo:      repo,
		store:     store,
	}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/apperr"
	"github.com/shulsign/onboarding/internal/repository"
)

// UpdateProfileRequest is the request body for PATCH /api/user.
type UpdateProfileRequest struct {
	ID      string         `json:"id"`
	Updates map[string]any `json:"updates"`
}

// UpdateProfile applies a partial update to a dashboard profile. Columns
// outside the updatable whitelist are rejected rather than silently dropped.
func (h *Handlers) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.Validation("Invalid request body."))
	}

	if req.ID == "" {
		return writeError(c, apperr.Validation("`id` is required to update the profile."))
	}
	if len(req.Updates) == 0 {
		return writeError(c, apperr.Validation("Provide at least one field to update."))
	}
	for column := range req.Updates {
		if !repository.UserColumnUpdatable(column) {
			return writeError(c, apperr.Validation(fmt.Sprintf("Unknown profile field %q.", column)))
		}
	}

	user, err := h.repo.UpdateUserFields(c.Request().Context(), req.ID, req.Updates)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Profile not found.")
		}
		return writeError(c, apperr.Persistence("Failed to update profile. Please try again.", err))
	}

	return c.JSON(http.StatusOK, map[string]any{"data": user})
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard redeems a magic link token and returns the authenticated
// profile. No session state is established; every dashboard load presents
// the token again.
func (h *Handlers) Dashboard(c echo.Context) error {
	profile, err := h.dashboard.Redeem(c.Request().Context(), c.QueryParam("token"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]any{"profile": profile})
}

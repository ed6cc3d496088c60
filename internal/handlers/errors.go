// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/apperr"
)

// writeError converts a taxonomy error to the JSON error body. Server-side
// failures are logged with their cause; the response only carries the short
// user-safe message.
func writeError(c echo.Context, err error) error {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
	}
	return c.JSON(status, map[string]string{"error": apperr.Message(err)})
}

// notFound writes the 404 error body.
func notFound(c echo.Context, msg string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": msg})
}

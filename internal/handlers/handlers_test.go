// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/config"
	"github.com/shulsign/onboarding/internal/handlers"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/services/dashboard"
	"github.com/shulsign/onboarding/internal/services/mailer"
	"github.com/shulsign/onboarding/internal/services/signup"
	"github.com/shulsign/onboarding/internal/storage"
	"github.com/shulsign/onboarding/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBaseURL = "http://localhost:8080"

// newTestHandlers wires a Handlers instance against an in-memory database,
// an unconfigured mailer and a temp-dir blob store.
func newTestHandlers(t *testing.T) (*handlers.Handlers, *repository.Repository, *storage.Store) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)
	store := storage.New(t.TempDir(), "/pictures")
	mail := mailer.NewService(&config.SMTPConfig{})
	signupSvc := signup.NewService(repo, mail, testBaseURL)
	dashboardSvc := dashboard.NewService(repo)
	return handlers.New(signupSvc, dashboardSvc, repo, store), repo, store
}

// decodeBody unmarshals a recorded JSON response into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	require.NoError(t, h.Health(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

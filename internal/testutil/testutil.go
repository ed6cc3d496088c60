// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/database"
	"github.com/shulsign/onboarding/internal/models"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates an identity row for the given email.
func NewTestUser(t *testing.T, repo *repository.Repository, email string) *models.User {
	t.Helper()
	name := "Test User"
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    email,
		FullName: &name,
	}
	err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	return user
}

// NewTestSynagogue creates a synagogue row and returns its admin key.
func NewTestSynagogue(t *testing.T, repo *repository.Repository) (adminKey, tvKey string) {
	t.Helper()
	adminKey = uuid.NewString()
	tvKey = uuid.NewString()
	err := repo.CreateSynagogue(context.Background(), adminKey, tvKey)
	require.NoError(t, err)
	return adminKey, tvKey
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

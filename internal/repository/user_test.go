// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shulsign/onboarding/internal/models"
	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	name := "Jane Doe"
	phone := "+1 555 0100"
	user := &models.User{
		ID:       uuid.NewString(),
		Email:    "jane@example.com",
		FullName: &name,
		Phone:    &phone,
	}

	err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	got, err := repo.GetUserByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	require.NotNil(t, got.FullName)
	assert.Equal(t, "Jane Doe", *got.FullName)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+1 555 0100", *got.Phone)
	assert.Nil(t, got.Image1Path)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	testutil.NewTestUser(t, repo, "jane@example.com")

	name := "Other"
	err := repo.CreateUser(ctx, &models.User{
		ID:       uuid.NewString(),
		Email:    "jane@example.com",
		FullName: &name,
	})

	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetUserByEmail(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetUserByID(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "jane@example.com")

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got.Email)
}

func TestGetUserByID_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetUserByID(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateUserFields(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	user := testutil.NewTestUser(t, repo, "jane@example.com")

	updated, err := repo.UpdateUserFields(ctx, user.ID, map[string]any{
		"q1":          "Congregation Beth Example",
		"image3_path": "user-images/abc.jpg",
		"latitude":    31.78,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Q1)
	assert.Equal(t, "Congregation Beth Example", *updated.Q1)
	require.NotNil(t, updated.Image3Path)
	assert.Equal(t, "user-images/abc.jpg", *updated.Image3Path)
	require.NotNil(t, updated.Latitude)
	assert.InDelta(t, 31.78, *updated.Latitude, 0.001)
}

func TestUpdateUserFields_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.UpdateUserFields(context.Background(), uuid.NewString(), map[string]any{"q1": "x"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserColumnUpdatable(t *testing.T) {
	assert.True(t, repository.UserColumnUpdatable("phone"))
	assert.True(t, repository.UserColumnUpdatable("image7_path"))
	assert.False(t, repository.UserColumnUpdatable("id"))
	assert.False(t, repository.UserColumnUpdatable("email"))
	assert.False(t, repository.UserColumnUpdatable("created_at"))
	assert.False(t, repository.UserColumnUpdatable("nonsense"))
}

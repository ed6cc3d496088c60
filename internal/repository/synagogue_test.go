// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package repository_test

import (
	"context"
	"testing"

	"github.com/shulsign/onboarding/internal/repository"
	"github.com/shulsign/onboarding/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSynagogueByAdminKey(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	adminKey, tvKey := testutil.NewTestSynagogue(t, repo)

	row, err := repo.GetSynagogueByAdminKey(ctx, adminKey)
	require.NoError(t, err)
	assert.Equal(t, adminKey, row["admin_key"])
	assert.Equal(t, tvKey, row["tv_key"])
	// Zmanim flags default off.
	assert.EqualValues(t, 0, row["sunrise"])
	assert.Nil(t, row["logo_path"])
}

func TestGetSynagogueByAdminKey_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	_, err := repo.GetSynagogueByAdminKey(context.Background(), "missing")

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdateSynagogueFields(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	adminKey, _ := testutil.NewTestSynagogue(t, repo)

	err := repo.UpdateSynagogueFields(ctx, adminKey, map[string]any{
		"shacharit1": "07:00",
		"sunrise":    true,
		"rabbi_msg":  "Shabbat shalom",
	})
	require.NoError(t, err)

	row, err := repo.GetSynagogueByAdminKey(ctx, adminKey)
	require.NoError(t, err)
	assert.Equal(t, "07:00", row["shacharit1"])
	assert.EqualValues(t, 1, row["sunrise"])
	assert.Equal(t, "Shabbat shalom", row["rabbi_msg"])
}

func TestUpdateSynagogueFields_NotFound(t *testing.T) {
	_, repo := testutil.NewTestDB(t)

	err := repo.UpdateSynagogueFields(context.Background(), "missing", map[string]any{"shacharit1": "07:00"})

	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSynagogueImagePath_RoundTrip(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	adminKey, _ := testutil.NewTestSynagogue(t, repo)

	path, err := repo.GetSynagogueImagePath(ctx, adminKey, "logo")
	require.NoError(t, err)
	assert.Nil(t, path)

	stored := "tvkey/logo-1234.jpg"
	err = repo.SetSynagogueImagePath(ctx, adminKey, "logo", &stored)
	require.NoError(t, err)

	path, err = repo.GetSynagogueImagePath(ctx, adminKey, "logo")
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, stored, *path)

	err = repo.SetSynagogueImagePath(ctx, adminKey, "logo", nil)
	require.NoError(t, err)

	path, err = repo.GetSynagogueImagePath(ctx, adminKey, "logo")
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestGetSynagogueTVKey(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	adminKey, tvKey := testutil.NewTestSynagogue(t, repo)

	got, err := repo.GetSynagogueTVKey(ctx, adminKey)
	require.NoError(t, err)
	assert.Equal(t, tvKey, got)

	_, err = repo.GetSynagogueTVKey(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReferenceLists(t *testing.T) {
	_, repo := testutil.NewTestDB(t)
	ctx := context.Background()

	companies, err := repo.ListEmergencyCompanies(ctx)
	require.NoError(t, err)
	assert.Empty(t, companies)

	require.NoError(t, repo.AddEmergencyCompany(ctx, "Hatzalah"))
	require.NoError(t, repo.AddEmergencyCompany(ctx, "Chaverim"))

	companies, err = repo.ListEmergencyCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, "Chaverim", companies[0].Name)

	require.NoError(t, repo.AddLayout(ctx, "classic"))
	layouts, err := repo.ListLayouts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"classic"}, layouts)
}

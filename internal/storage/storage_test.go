// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shulsign/onboarding/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(dir, "/pictures")

	err := store.Save("tvkey/logo-abc.jpg", []byte("image-bytes"))
	require.NoError(t, err)
	assert.True(t, store.Exists("tvkey/logo-abc.jpg"))

	data, err := os.ReadFile(filepath.Join(dir, "tvkey", "logo-abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	err = store.Remove("tvkey/logo-abc.jpg")
	require.NoError(t, err)
	assert.False(t, store.Exists("tvkey/logo-abc.jpg"))
}

func TestRemove_MissingBlobIsNoError(t *testing.T) {
	store := storage.New(t.TempDir(), "/pictures")

	err := store.Remove("never/was/there.jpg")

	assert.NoError(t, err)
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name       string
		publicBase string
		path       string
		expected   string
	}{
		{"plain", "/pictures", "tvkey/logo.jpg", "/pictures/tvkey/logo.jpg"},
		{"trailing slash trimmed", "/pictures/", "tvkey/logo.jpg", "/pictures/tvkey/logo.jpg"},
		{"leading slash in path", "/pictures", "/tvkey/logo.jpg", "/pictures/tvkey/logo.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.New(t.TempDir(), tt.publicBase)
			assert.Equal(t, tt.expected, store.PublicURL(tt.path))
		})
	}
}

func TestSave_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(filepath.Join(dir, "blobs"), "/pictures")

	err := store.Save("../escape.jpg", []byte("x"))
	require.NoError(t, err) // cleaned to blobs/escape.jpg
	assert.True(t, store.Exists("escape.jpg"))

	_, statErr := os.Stat(filepath.Join(dir, "escape.jpg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSave_RejectsEmptyPath(t *testing.T) {
	store := storage.New(t.TempDir(), "/pictures")

	err := store.Save("", []byte("x"))

	assert.Error(t, err)
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

// Package storage is the image blob store: uploaded files live on local disk
// under a configurable directory and are served under a public URL prefix.
package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Store persists blobs under dir and maps stored paths to public URLs.
type Store struct {
	dir        string
	publicBase string
}

// New creates a blob store rooted at dir. publicBase is the URL path prefix
// the blobs are served under.
func New(dir, publicBase string) *Store {
	return &Store{dir: dir, publicBase: strings.TrimSuffix(publicBase, "/")}
}

// Dir returns the root directory blobs are stored under.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes a blob under the given storage path, creating parent folders
// as needed.
func (s *Store) Save(storagePath string, data []byte) error {
	full, err := s.resolve(storagePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return fmt.Errorf("creating blob directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o640); err != nil {
		return fmt.Errorf("writing blob: %w", err)
	}
	return nil
}

// Remove deletes a blob. Removing a missing blob is not an error.
func (s *Store) Remove(storagePath string) error {
	full, err := s.resolve(storagePath)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing blob: %w", err)
	}
	return nil
}

// Exists reports whether a blob is present.
func (s *Store) Exists(storagePath string) bool {
	full, err := s.resolve(storagePath)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

// PublicURL returns the URL path a stored blob is served under.
func (s *Store) PublicURL(storagePath string) string {
	return s.publicBase + "/" + strings.TrimPrefix(storagePath, "/")
}

// resolve maps a storage path to a location on disk, rejecting traversal
// outside the store root.
func (s *Store) resolve(storagePath string) (string, error) {
	cleaned := path.Clean("/" + storagePath)
	if cleaned == "/" {
		return "", fmt.Errorf("invalid storage path %q", storagePath)
	}
	return filepath.Join(s.dir, filepath.FromSlash(cleaned)), nil
}

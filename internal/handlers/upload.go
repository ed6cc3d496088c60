// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/apperr"
)

// UploadImage stores a dashboard image blob and returns its storage path and
// public URL. An explicit `path` form value overrides the generated object
// name.
func (h *Handlers) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, apperr.Validation("A file is required under the `file` field."))
	}

	data, err := readMultipartFile(fileHeader)
	if err != nil {
		return writeError(c, apperr.Persistence("Failed to upload image. Please try again.", err))
	}

	storagePath := c.FormValue("path")
	if storagePath == "" {
		storagePath = fmt.Sprintf("user-images/%s.%s", uuid.NewString(), fileExtension(fileHeader.Filename, "bin"))
	}

	if err := h.store.Save(storagePath, data); err != nil {
		return writeError(c, apperr.Persistence("Failed to upload image. Please try again.", err))
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"path":      storagePath,
		"publicUrl": h.store.PublicURL(storagePath),
	})
}

func readMultipartFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(f)
}

// fileExtension returns the lower-cased extension of a filename, or fallback
// when the name carries none.
func fileExtension(filename, fallback string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return fallback
	}
	return strings.ToLower(filename[idx+1:])
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shulsign/onboarding/internal/apperr"
	"github.com/shulsign/onboarding/internal/models"
	"github.com/shulsign/onboarding/internal/repository"
)

// LoadSynagogue returns the full signage configuration of a synagogue,
// with image slots expanded to public URLs and zmanim flags coerced to
// booleans.
func (h *Handlers) LoadSynagogue(c echo.Context) error {
	adminKey := c.Param("admin_key")
	if adminKey == "" {
		return writeError(c, apperr.Validation("Missing admin_key"))
	}

	row, err := h.repo.GetSynagogueByAdminKey(c.Request().Context(), adminKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Not found")
		}
		return writeError(c, apperr.Persistence("Could not load synagogue.", err))
	}

	for _, field := range models.SynagogueImageFields {
		full := any(nil)
		if stored, ok := row[field+"_path"].(string); ok && stored != "" {
			full = h.store.PublicURL(stored)
		}
		row[field+"_path_full"] = full
		row[field+"_path_thumb"] = full
	}

	for _, key := range models.SynagogueZmanimFields {
		row[key] = truthy(row[key])
	}

	return c.JSON(http.StatusOK, row)
}

// SaveSynagogue applies a whitelist-filtered partial update to a synagogue
// row. Unknown keys in the body are ignored; zmanim values are coerced to
// booleans.
func (h *Handlers) SaveSynagogue(c echo.Context) error {
	adminKey := c.Param("admin_key")
	if adminKey == "" {
		return writeError(c, apperr.Validation("Missing admin_key"))
	}

	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return writeError(c, apperr.Validation("Invalid request body."))
	}

	updates := map[string]any{}
	for _, key := range models.SynagogueTimeFields {
		if value, ok := body[key]; ok {
			updates[key] = value
		}
	}
	for _, key := range models.SynagogueMiscFields {
		if value, ok := body[key]; ok {
			updates[key] = value
		}
	}
	for _, key := range models.SynagogueZmanimFields {
		if value, ok := body[key]; ok {
			updates[key] = truthy(value)
		}
	}

	if len(updates) == 0 {
		return writeError(c, apperr.Validation("No fields to update."))
	}

	if err := h.repo.UpdateSynagogueFields(c.Request().Context(), adminKey, updates); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Not found")
		}
		return writeError(c, apperr.Persistence("Could not save synagogue.", err))
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// UploadSynagogueImages accepts multipart uploads for one or more image
// slots, stores each blob under the synagogue's tv_key folder and records
// the new path.
func (h *Handlers) UploadSynagogueImages(c echo.Context) error {
	adminKey := c.Param("admin_key")
	if adminKey == "" {
		return writeError(c, apperr.Validation("Missing admin_key"))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, apperr.Validation("No file found in request."))
	}

	fields := []string{}
	for _, field := range models.SynagogueImageFields {
		if files := form.File[field]; len(files) > 0 {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return writeError(c, apperr.Validation("No file found in request."))
	}

	ctx := c.Request().Context()
	tvKey, err := h.repo.GetSynagogueTVKey(ctx, adminKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "tv_key not found for admin_key")
		}
		return writeError(c, apperr.Persistence("Could not load synagogue.", err))
	}

	uploaded := map[string]map[string]string{}
	for _, field := range fields {
		fh := form.File[field][0]

		data, err := readMultipartFile(fh)
		if err != nil {
			return writeError(c, apperr.Persistence("Failed to upload image. Please try again.", err))
		}

		filename := fmt.Sprintf("%s-%s.%s", field, uuid.NewString(), fileExtension(fh.Filename, "jpg"))
		storagePath := tvKey + "/" + filename

		if err := h.store.Save(storagePath, data); err != nil {
			return writeError(c, apperr.Persistence("Failed to upload image. Please try again.", err))
		}
		if err := h.repo.SetSynagogueImagePath(ctx, adminKey, field, &storagePath); err != nil {
			return writeError(c, apperr.Persistence("Could not save image path.", err))
		}

		uploaded[field] = map[string]string{"name": filename, "tv_key": tvKey}
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true, "uploaded": uploaded})
}

// DeleteSynagogueImageRequest is the request body for clearing an image slot.
type DeleteSynagogueImageRequest struct {
	Field string `json:"field"`
}

// DeleteSynagogueImage removes the stored blob of an image slot and clears
// its path column. A failed blob removal is logged but does not block
// clearing the column.
func (h *Handlers) DeleteSynagogueImage(c echo.Context) error {
	adminKey := c.Param("admin_key")
	if adminKey == "" {
		return writeError(c, apperr.Validation("Missing admin_key"))
	}

	var req DeleteSynagogueImageRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperr.Validation("Invalid request body."))
	}
	if !slices.Contains(models.SynagogueImageFields, req.Field) {
		return writeError(c, apperr.Validation("Invalid field"))
	}

	ctx := c.Request().Context()
	path, err := h.repo.GetSynagogueImagePath(ctx, adminKey, req.Field)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Not found")
		}
		return writeError(c, apperr.Persistence("Could not load synagogue.", err))
	}

	if path != nil && *path != "" {
		if err := h.store.Remove(*path); err != nil {
			slog.Warn("failed to remove blob", "path", *path, "error", err)
		}
	}

	if err := h.repo.SetSynagogueImagePath(ctx, adminKey, req.Field, nil); err != nil {
		return writeError(c, apperr.Persistence("Could not clear image path.", err))
	}

	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

// ListEmergencyCompanies returns the selectable emergency contact providers.
func (h *Handlers) ListEmergencyCompanies(c echo.Context) error {
	companies, err := h.repo.ListEmergencyCompanies(c.Request().Context())
	if err != nil {
		return writeError(c, apperr.Persistence("Could not load emergency companies.", err))
	}
	return c.JSON(http.StatusOK, companies)
}

// ListLayouts returns the names of the available sign layouts.
func (h *Handlers) ListLayouts(c echo.Context) error {
	layouts, err := h.repo.ListLayouts(c.Request().Context())
	if err != nil {
		return writeError(c, apperr.Persistence("Could not load layouts.", err))
	}
	return c.JSON(http.StatusOK, layouts)
}

// truthy coerces a decoded JSON value to a boolean, matching how the admin
// console sends zmanim flags (true/false, 0/1 or "on").
func truthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int64:
		return v != 0
	case string:
		return v != "" && v != "0" && v != "false"
	case nil:
		return false
	default:
		return true
	}
}

// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package handlers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMultipartContext builds an Echo context carrying a multipart body with
// one file per entry in files plus the given extra form values.
func newMultipartContext(t *testing.T, e *echo.Echo, path string, files map[string]string, values map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadImage(t *testing.T) {
	h, _, store := newTestHandlers(t)
	e := echo.New()

	c, rec := newMultipartContext(t, e, "/api/upload", map[string]string{"file": "photo.PNG"}, nil)
	require.NoError(t, h.UploadImage(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody(t, rec)

	path, ok := resp["path"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(path, "user-images/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Equal(t, "/pictures/"+path, resp["publicUrl"])
	assert.True(t, store.Exists(path))
}

func TestUploadImageExplicitPath(t *testing.T) {
	h, _, store := newTestHandlers(t)
	e := echo.New()

	c, rec := newMultipartContext(t, e, "/api/upload",
		map[string]string{"file": "photo.png"},
		map[string]string{"path": "custom/dir/photo.png"})
	require.NoError(t, h.UploadImage(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "custom/dir/photo.png", decodeBody(t, rec)["path"])
	assert.True(t, store.Exists("custom/dir/photo.png"))
}

func TestUploadImageMissingFile(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := newMultipartContext(t, e, "/api/upload", nil, map[string]string{"path": "x"})
	require.NoError(t, h.UploadImage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "A file is required under the `file` field.", decodeBody(t, rec)["error"])
}

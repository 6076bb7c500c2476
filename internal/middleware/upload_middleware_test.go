package middleware_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shopadmin/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// setupUploadApp mounts the upload middleware ahead of a probe handler that
// echoes the paths attached to the request context.
func setupUploadApp(t *testing.T, maxFiles int) (*fiber.App, string) {
	t.Helper()
	uploadDir := t.TempDir()

	app := fiber.New()
	app.Post("/probe", middleware.UploadImages(uploadDir, maxFiles), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"paths": middleware.UploadedImages(c),
		})
	})
	return app, uploadDir
}

func multipartRequest(t *testing.T, fileNames ...string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range fileNames {
		part, err := writer.CreateFormFile(middleware.ImagesField, name)
		assert.NoError(t, err)
		_, err = part.Write([]byte("fake image bytes for " + name))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/probe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func probePaths(t *testing.T, resp *http.Response) []string {
	t.Helper()
	defer resp.Body.Close()
	var parsed struct {
		Paths []string `json:"paths"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed.Paths
}

func TestUploadImages_StoresFilesAndAttachesPaths(t *testing.T) {
	app, uploadDir := setupUploadApp(t, 5)

	resp, err := app.Test(multipartRequest(t, "front.jpg", "back.jpg"), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	paths := probePaths(t, resp)
	assert.Len(t, paths, 2)
	for _, p := range paths {
		assert.True(t, strings.HasPrefix(p, "/uploads/"))

		// The stored file exists under the content root
		stored := filepath.Join(uploadDir, filepath.Base(p))
		data, err := os.ReadFile(stored)
		assert.NoError(t, err)
		assert.Contains(t, string(data), "fake image bytes")
	}

	// Generated filenames keep the original name as a suffix
	assert.Contains(t, paths[0], "front.jpg")
}

func TestUploadImages_NoFilesPassesThrough(t *testing.T) {
	app, uploadDir := setupUploadApp(t, 5)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	assert.NoError(t, writer.WriteField("name", "No Image Product"))
	assert.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/probe", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	paths := probePaths(t, resp)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)

	entries, err := os.ReadDir(uploadDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImages_TooManyFiles(t *testing.T) {
	app, uploadDir := setupUploadApp(t, 2)

	resp, err := app.Test(multipartRequest(t, "a.jpg", "b.jpg", "c.jpg"), -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// Nothing may be written when the request is rejected
	entries, err := os.ReadDir(uploadDir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadImages_RejectsNonMultipartBody(t *testing.T) {
	app, _ := setupUploadApp(t, 5)

	req := httptest.NewRequest(http.MethodPost, "/probe", strings.NewReader(`{"name":"json"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

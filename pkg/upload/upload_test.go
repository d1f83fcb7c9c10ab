//go:build unit

package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-portal-api/pkg/cerror"
)

func newUploadApp(t *testing.T, baseDir, field string) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: cerror.Middleware,
	})
	app.Post("/upload", func(ctx *fiber.Ctx) error {
		path, err := Save(ctx, baseDir, field)
		if err != nil {
			return err
		}

		return ctx.JSON(fiber.Map{"path": path})
	})

	return app
}

func buildMultipartBody(t *testing.T, field, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestSave(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		baseDir := filepath.Join(t.TempDir(), "uploads")
		app := newUploadApp(t, baseDir, "resume")

		body, contentType := buildMultipartBody(t, "resume", "resume.pdf", "pdf-bytes")
		req := httptest.NewRequest(fiber.MethodPost, "/upload", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		entries, err := os.ReadDir(filepath.Join(baseDir, "resumes"))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.True(t, strings.HasSuffix(entries[0].Name(), ".pdf"))
	})

	t.Run("when extension is not allowed should return bad request", func(t *testing.T) {
		app := newUploadApp(t, t.TempDir(), "resume")

		body, contentType := buildMultipartBody(t, "resume", "malware.exe", "bytes")
		req := httptest.NewRequest(fiber.MethodPost, "/upload", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("when file is missing should return ErrNoFile", func(t *testing.T) {
		app := fiber.New()
		app.Post("/upload", func(ctx *fiber.Ctx) error {
			_, err := Save(ctx, t.TempDir(), "resume")
			assert.ErrorIs(t, err, ErrNoFile)
			return ctx.SendStatus(fiber.StatusOK)
		})

		req := httptest.NewRequest(fiber.MethodPost, "/upload", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("unknown field name should land in misc folder", func(t *testing.T) {
		baseDir := filepath.Join(t.TempDir(), "uploads")
		app := newUploadApp(t, baseDir, "attachment")

		body, contentType := buildMultipartBody(t, "attachment", "notes.pdf", "bytes")
		req := httptest.NewRequest(fiber.MethodPost, "/upload", body)
		req.Header.Set(fiber.HeaderContentType, contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		entries, err := os.ReadDir(filepath.Join(baseDir, "misc"))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap/zapcore"

	"career-portal-api/pkg/cerror"
)

const MaxFileSize = 5 << 20

var ErrNoFile = cerror.NewError(
	fiber.StatusBadRequest,
	"no file uploaded",
).SetSeverity(zapcore.WarnLevel)

// Folder per form field, matching the public /uploads layout.
var fieldFolders = map[string]string{
	"profilePhoto": "avatars",
	"resume":       "resumes",
	"logo":         "logos",
}

var allowedExtensions = map[string]struct{}{
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".gif":  {},
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Save writes the multipart file of the given field under baseDir and returns
// the public path it is served from. Missing files return ErrNoFile so
// handlers with optional uploads can ignore it.
func Save(ctx *fiber.Ctx, baseDir, field string) (string, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil {
		return "", ErrNoFile
	}

	if fileHeader.Size > MaxFileSize {
		return "", cerror.NewError(
			fiber.StatusBadRequest,
			"file exceeds the 5MB size limit",
		).SetSeverity(zapcore.WarnLevel)
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if _, isAllowed := allowedExtensions[extension]; !isAllowed {
		return "", cerror.NewError(
			fiber.StatusBadRequest,
			"only images, PDFs and Word documents are allowed",
		).SetSeverity(zapcore.WarnLevel)
	}

	folder, isKnownField := fieldFolders[field]
	if !isKnownField {
		folder = "misc"
	}

	directory := filepath.Join(baseDir, folder)
	err = os.MkdirAll(directory, 0o755)
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while create upload directory",
		)
	}

	fileName := fmt.Sprintf("%s%s", uuid.New().String(), extension)
	err = ctx.SaveFile(fileHeader, filepath.Join(directory, fileName))
	if err != nil {
		return "", cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while save uploaded file",
		)
	}

	return "/" + filepath.ToSlash(filepath.Join(baseDir, folder, fileName)), nil
}

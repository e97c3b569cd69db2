package handlers

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20 // 10 MiB, matches the form hint

var (
	imageExts  = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true}
	resumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

	errNoFile = errors.New("no file")
	errBadExt = errors.New("unsupported file type")
	errTooBig = errors.New("file too large")
)

// saveUpload stores a multipart file under <mediaDir>/uploads and returns its
// public /media/... path. The write completes before any store mutation that
// references it, so a half-finished upload can never reach the database.
func saveUpload(c *fiber.Ctx, field, mediaDir string, allowed map[string]bool) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", errNoFile
	}
	if fh.Size > maxUploadBytes {
		return "", errTooBig
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowed[ext] {
		return "", errBadExt
	}
	dir := filepath.Join(mediaDir, "uploads")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/media/uploads/" + name, nil
}

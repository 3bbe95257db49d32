// Package storage persists uploaded images on local disk and reads them back in
// the encoding the providers consume.
package storage

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"poi-api/internal/apperr"
	"poi-api/internal/models"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const fallbackMimeType = "image/jpeg"

// Local stores uploads under a single directory.
type Local struct {
	dir string
}

// NewLocal creates dir if needed.
func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: unable to create upload folder %s: %w", dir, err)
	}
	return &Local{dir: dir}, nil
}

// Dir returns the upload folder.
func (l *Local) Dir() string {
	return l.dir
}

// Persist copies the uploaded file to <dir>/<unix>_<uuid>_<name> and returns that path.
func (l *Local) Persist(file *multipart.FileHeader) (string, error) {
	if file == nil || file.Filename == "" {
		return "", apperr.Storage("storage.persist", fmt.Errorf("upload has no file name"))
	}

	name := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString(), filepath.Base(file.Filename))
	path := filepath.Join(l.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", apperr.Storage("storage.persist", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", apperr.Storage("storage.persist", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperr.Storage("storage.persist", err)
	}

	log.Info().Str("path", path).Msg("saved upload")
	return path, nil
}

// Remove deletes a stored upload. A file that is already gone is not an error.
func (l *Local) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return apperr.Storage("storage.remove", err)
	}
	return nil
}

// LoadImage reads the file at path and encodes it.
func (l *Local) LoadImage(path string) (models.ImagePayload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImagePayload{}, apperr.Storage("storage.load", err)
	}
	return Encode(data), nil
}

// Encode base64-encodes data and sniffs its MIME type, defaulting to JPEG for non-images.
func Encode(data []byte) models.ImagePayload {
	mimeType := fallbackMimeType
	if detected := mimetype.Detect(data); strings.HasPrefix(detected.String(), "image/") {
		mimeType = detected.String()
	}
	return models.ImagePayload{
		Base64:   base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	}
}

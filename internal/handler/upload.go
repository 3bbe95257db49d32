package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Uploader persists a multipart upload and returns the stored path.
type Uploader interface {
	Persist(file *multipart.FileHeader) (string, error)
	Remove(path string) error
}

// saveUpload stores the "file" form field. It writes the error response itself
// and reports false when the handler must stop.
func saveUpload(c *gin.Context, uploader Uploader) (string, bool) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing multipart field 'file'")
		return "", false
	}
	if file.Size <= 0 {
		respondError(c, http.StatusInternalServerError, messageEmptyFile)
		return "", false
	}

	path, err := uploader.Persist(file)
	if err != nil {
		respond(c, nil, err)
		return "", false
	}
	zerolog.Ctx(c.Request.Context()).Debug().Str("path", path).Int64("size", file.Size).Msg("stored upload")
	return path, true
}

// discardUpload removes a transient upload once the request is done with it.
func discardUpload(c *gin.Context, uploader Uploader, path string) {
	if err := uploader.Remove(path); err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().Err(err).Str("path", path).Msg("unable to remove upload")
	}
}

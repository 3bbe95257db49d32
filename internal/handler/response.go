package handler

import (
	"errors"
	"net/http"

	"poi-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	statusSuccess = "success"
	statusError   = "error"

	messageInternal  = "Something went wrong"
	messageEmptyFile = "File size is 0"
)

// Envelope wraps every response body.
type Envelope struct {
	Status  string `json:"status" example:"success"`
	Message any    `json:"message" swaggertype:"object"`
}

// ErrorEnvelope documents the error shape.
type ErrorEnvelope struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"Something went wrong"`
}

// respond writes payload on success, otherwise maps err onto a status code.
// Invalid input exposes its message, which is always a fixed string naming the
// rejected field and never carries request values. Missing records report
// "not found". Everything else is logged and reported with a generic message.
func respond(c *gin.Context, payload any, err error) {
	if err == nil {
		c.JSON(http.StatusOK, Envelope{Status: statusSuccess, Message: payload})
		return
	}

	logger := zerolog.Ctx(c.Request.Context())
	var e *apperr.Error
	switch {
	case errors.As(err, &e) && e.Kind == apperr.KindInvalidInput:
		logger.Warn().Err(err).Msg("rejected request")
		msg := e.Kind.String()
		if e.Err != nil {
			msg = e.Err.Error()
		}
		respondError(c, http.StatusBadRequest, msg)
	case errors.Is(err, apperr.ErrNotFound):
		logger.Warn().Err(err).Msg("record not found")
		respondError(c, http.StatusNotFound, "not found")
	default:
		logger.Error().Err(err).
			Str("kind", apperr.KindOf(err).String()).
			Int("provider_status", apperr.StatusCode(err)).
			Msg("generating error response")
		respondError(c, http.StatusInternalServerError, messageInternal)
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorEnvelope{Status: statusError, Message: message})
}

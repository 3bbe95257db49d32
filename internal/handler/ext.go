package handler

import (
	"context"
	"net/http"

	"poi-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ExtService exposes each provider on its own
type ExtService interface {
	Vision(ctx context.Context, encoded string) (*models.VisionSummary, error)
	Geocoding(ctx context.Context, coordinate models.Coordinate) (*models.GeocodeSummary, error)
	GPTCompletion(ctx context.Context, query string) (string, error)
	GeminiCompletion(ctx context.Context, query string) (string, error)
	LlamaCompletion(ctx context.Context, query string) (string, error)
	GPTVisual(ctx context.Context, imagePath string) (string, error)
	GeminiVisual(ctx context.Context, imagePath string) (string, error)
	Embedding(ctx context.Context, texts []string) ([][]float64, error)
}

// ExtHandler handles the single provider routes
type ExtHandler struct {
	service  ExtService
	uploader Uploader
}

// NewExtHandler creates a new ext handler
func NewExtHandler(svc ExtService, uploader Uploader) *ExtHandler {
	return &ExtHandler{service: svc, uploader: uploader}
}

// TextGPT handles POST /api/v1/ext/text_gpt requests
//
//	@Summary	Complete a query with OpenAI
//	@Tags		ext
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CompletionRequest	true	"Query"
//	@Success	200		{object}	Envelope{message=string}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/text_gpt [post]
func (h *ExtHandler) TextGPT(c *gin.Context) {
	h.complete(c, h.service.GPTCompletion)
}

// TextGemini handles POST /api/v1/ext/text_gemini requests
//
//	@Summary	Complete a query with Gemini
//	@Tags		ext
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CompletionRequest	true	"Query"
//	@Success	200		{object}	Envelope{message=string}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/text_gemini [post]
func (h *ExtHandler) TextGemini(c *gin.Context) {
	h.complete(c, h.service.GeminiCompletion)
}

// TextLlama handles POST /api/v1/ext/text_llama requests
//
//	@Summary	Complete a query with Llama on Cloudflare Workers AI
//	@Tags		ext
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.CompletionRequest	true	"Query"
//	@Success	200		{object}	Envelope{message=string}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/text_llama [post]
func (h *ExtHandler) TextLlama(c *gin.Context) {
	h.complete(c, h.service.LlamaCompletion)
}

func (h *ExtHandler) complete(c *gin.Context, call func(context.Context, string) (string, error)) {
	var req models.CompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "body must be {\"query\": string}")
		return
	}
	text, err := call(c.Request.Context(), req.Query)
	respond(c, text, err)
}

// VisualGPT handles POST /api/v1/ext/visual_gpt requests
//
//	@Summary	Describe a photo with OpenAI
//	@Tags		ext
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Photo"
//	@Success	200		{object}	Envelope{message=string}
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/visual_gpt [post]
func (h *ExtHandler) VisualGPT(c *gin.Context) {
	h.visual(c, h.service.GPTVisual)
}

// VisualGemini handles POST /api/v1/ext/visual_gemini requests
//
//	@Summary	Describe a photo with Gemini
//	@Tags		ext
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Photo"
//	@Success	200		{object}	Envelope{message=string}
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/visual_gemini [post]
func (h *ExtHandler) VisualGemini(c *gin.Context) {
	h.visual(c, h.service.GeminiVisual)
}

func (h *ExtHandler) visual(c *gin.Context, call func(context.Context, string) (string, error)) {
	path, ok := saveUpload(c, h.uploader)
	if !ok {
		return
	}
	text, err := call(c.Request.Context(), path)
	respond(c, text, err)
}

// Vision handles POST /api/v1/ext/vision requests
//
//	@Summary	Detect faces and text in a base64 image with Google Cloud Vision
//	@Tags		ext
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.VisionRequest	true	"Base64 image"
//	@Success	200		{object}	Envelope{message=models.VisionSummary}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/vision [post]
func (h *ExtHandler) Vision(c *gin.Context) {
	var req models.VisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "body must be {\"base64\": string}")
		return
	}
	summary, err := h.service.Vision(c.Request.Context(), req.Base64)
	respond(c, summary, err)
}

// Embedding handles POST /api/v1/ext/embedding requests
//
//	@Summary	Embed texts with BGE on Cloudflare Workers AI
//	@Tags		ext
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.EmbeddingRequest	true	"Texts"
//	@Success	200		{object}	Envelope{message=[][]number}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/ext/embedding [post]
func (h *ExtHandler) Embedding(c *gin.Context) {
	var req models.EmbeddingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "body must be {\"text\": [string]}")
		return
	}
	vectors, err := h.service.Embedding(c.Request.Context(), req.Text)
	respond(c, vectors, err)
}

// Geocoding handles GET /api/v1/ext/geocoding requests
//
//	@Summary	Reverse geocode a coordinate with the Google Geocoding API
//	@Tags		ext
//	@Produce	json
//	@Param		lat	query		number	true	"Latitude"
//	@Param		lng	query		number	true	"Longitude"
//	@Success	200	{object}	Envelope{message=models.GeocodeSummary}
//	@Failure	400	{object}	ErrorEnvelope
//	@Failure	500	{object}	ErrorEnvelope
//	@Router		/api/v1/ext/geocoding [get]
func (h *ExtHandler) Geocoding(c *gin.Context) {
	coordinate, err := parseCoordinate(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	summary, err := h.service.Geocoding(c.Request.Context(), coordinate)
	respond(c, summary, err)
}

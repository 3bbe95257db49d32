package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"poi-api/internal/apperr"
	"poi-api/internal/models"

	"github.com/gin-gonic/gin"
)

const maxDocumentBytes = 8 << 20

// StoreService keeps documents and embeddings
type StoreService interface {
	Put(ctx context.Context, body json.RawMessage) ([]int32, error)
	Get(ctx context.Context, id int32) (*models.KeyValue, error)
	List(ctx context.Context) ([]models.KeyValue, error)
	StoreTexts(ctx context.Context, req models.StoreVectorsRequest) ([]int32, error)
	Search(ctx context.Context, query string, limit int) ([]models.KeyValueVector, error)
	Neighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error)
}

// StoreHandler handles the document and vector store routes
type StoreHandler struct {
	service StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(svc StoreService) *StoreHandler {
	return &StoreHandler{service: svc}
}

// PutDocuments handles POST /api/v1/store/kv requests
//
//	@Summary	Store a JSON object, or each element of a JSON array
//	@Tags		store
//	@Accept		json
//	@Produce	json
//	@Param		body	body		object	true	"Document or array of documents"
//	@Success	200		{object}	Envelope{message=[]int}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	413		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/store/kv [post]
func (h *StoreHandler) PutDocuments(c *gin.Context) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxDocumentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, "body exceeds 8 MiB")
			return
		}
		respondError(c, http.StatusBadRequest, "unable to read body")
		return
	}
	ids, err := h.service.Put(c.Request.Context(), body)
	respond(c, ids, err)
}

// ListDocuments handles GET /api/v1/store/kv requests
//
//	@Summary	List stored documents
//	@Tags		store
//	@Produce	json
//	@Success	200	{object}	Envelope{message=[]models.KeyValue}
//	@Failure	500	{object}	ErrorEnvelope
//	@Router		/api/v1/store/kv [get]
func (h *StoreHandler) ListDocuments(c *gin.Context) {
	kvs, err := h.service.List(c.Request.Context())
	respond(c, kvs, err)
}

// GetDocument handles GET /api/v1/store/kv/:id requests
//
//	@Summary	Fetch one stored document
//	@Tags		store
//	@Produce	json
//	@Param		id	path		int	true	"Document id"
//	@Success	200	{object}	Envelope{message=models.KeyValue}
//	@Failure	400	{object}	ErrorEnvelope
//	@Failure	404	{object}	ErrorEnvelope
//	@Failure	500	{object}	ErrorEnvelope
//	@Router		/api/v1/store/kv/{id} [get]
func (h *StoreHandler) GetDocument(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	kv, err := h.service.Get(c.Request.Context(), id)
	respond(c, kv, err)
}

// StoreVectors handles POST /api/v1/store/vectors requests
//
//	@Summary	Embed texts and store the vectors
//	@Tags		store
//	@Accept		json
//	@Produce	json
//	@Param		body	body		models.StoreVectorsRequest	true	"Texts and metadata"
//	@Success	200		{object}	Envelope{message=[]int}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/store/vectors [post]
func (h *StoreHandler) StoreVectors(c *gin.Context) {
	var req models.StoreVectorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "body must be {\"text\": [string], \"metadata\": object}")
		return
	}
	ids, err := h.service.StoreTexts(c.Request.Context(), req)
	respond(c, ids, err)
}

// SearchVectors handles GET /api/v1/store/vectors/search requests
//
//	@Summary	Find stored vectors closest to a query text
//	@Tags		store
//	@Produce	json
//	@Param		q		query		string	true	"Query text"
//	@Param		limit	query		int		false	"Maximum results (default 10, max 100)"
//	@Success	200		{object}	Envelope{message=[]models.KeyValueVector}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/store/vectors/search [get]
func (h *StoreHandler) SearchVectors(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	rows, err := h.service.Search(c.Request.Context(), c.Query("q"), limit)
	respond(c, rows, err)
}

// Neighbors handles GET /api/v1/store/vectors/:id/neighbors requests
//
//	@Summary	Find stored vectors closest to a stored vector
//	@Tags		store
//	@Produce	json
//	@Param		id		path		int	true	"Vector id"
//	@Param		limit	query		int	false	"Maximum results (default 10, max 100)"
//	@Success	200		{object}	Envelope{message=[]models.KeyValueVector}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	404		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/store/vectors/{id}/neighbors [get]
func (h *StoreHandler) Neighbors(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	limit, err := queryLimit(c)
	if err != nil {
		respond(c, nil, err)
		return
	}
	rows, err := h.service.Neighbors(c.Request.Context(), id, limit)
	respond(c, rows, err)
}

func pathID(c *gin.Context) (int32, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidInput("path", "id must be a positive integer")
	}
	return int32(id), nil
}

// queryLimit returns 0 when limit is absent; the service applies the default.
func queryLimit(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apperr.InvalidInput("query", "limit must be a non-negative integer")
	}
	return limit, nil
}

package handler

import (
	"context"

	"poi-api/internal/models"

	"github.com/gin-gonic/gin"
)

// POIService is the pipeline behind the composite route
type POIService interface {
	FromImage(ctx context.Context, coordinate models.Coordinate, imagePath string) (*models.SummaryPair, error)
}

// POIHandler handles point of interest requests
type POIHandler struct {
	service  POIService
	uploader Uploader
}

// NewPOIHandler creates a new POI handler
func NewPOIHandler(svc POIService, uploader Uploader) *POIHandler {
	return &POIHandler{service: svc, uploader: uploader}
}

// FromImage handles POST /api/v1/poi/from_image requests. The upload only lives
// for the duration of the request.
//
//	@Summary	Identify the point of interest in a photo
//	@Tags		poi
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		lat		query		number	true	"Latitude"
//	@Param		lng		query		number	true	"Longitude"
//	@Param		file	formData	file	true	"Photo"
//	@Success	200		{object}	Envelope{message=models.SummaryPair}
//	@Failure	400		{object}	ErrorEnvelope
//	@Failure	500		{object}	ErrorEnvelope
//	@Router		/api/v1/poi/from_image [post]
func (h *POIHandler) FromImage(c *gin.Context) {
	coordinate, err := parseCoordinate(c)
	if err != nil {
		respond(c, nil, err)
		return
	}

	path, ok := saveUpload(c, h.uploader)
	if !ok {
		return
	}
	defer discardUpload(c, h.uploader, path)

	pair, err := h.service.FromImage(c.Request.Context(), coordinate, path)
	respond(c, pair, err)
}

package provider

import (
	"context"
	"fmt"
	"net/http"

	"poi-api/internal/config"
	"poi-api/internal/models"

	"github.com/go-resty/resty/v2"
)

const (
	googleVisionName  = "google_vision"
	googleGeocodeName = "google_geocode"
)

// GoogleVision runs Cloud Vision feature detection.
type GoogleVision struct {
	client *resty.Client
	apiKey string
}

// NewGoogleVision creates a Cloud Vision adapter.
func NewGoogleVision(cfg *config.Config) *GoogleVision {
	return &GoogleVision{
		client: newClient(cfg.GoogleVisionBaseURL, cfg.ProviderTimeout),
		apiKey: cfg.GoogleVisionAPIKey,
	}
}

type visionRequest struct {
	Requests []visionRequestItem `json:"requests"`
}

type visionRequestItem struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type models.VisionFeature `json:"type"`
}

// AnalyzeImage annotates image with the requested features.
func (v *GoogleVision) AnalyzeImage(ctx context.Context, image models.ImagePayload, features []models.VisionFeature) (*models.VisionAnalysis, error) {
	item := visionRequestItem{Image: visionImage{Content: image.Base64}}
	for _, f := range features {
		item.Features = append(item.Features, visionFeature{Type: f})
	}

	var analysis models.VisionAnalysis
	req := v.client.R().
		SetQueryParam("key", v.apiKey).
		SetBody(visionRequest{Requests: []visionRequestItem{item}})
	if err := exchange(ctx, googleVisionName, "annotate", req, http.MethodPost, "/images:annotate", &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// GoogleGeocoder reverse geocodes coordinates with the Geocoding API.
type GoogleGeocoder struct {
	client *resty.Client
	apiKey string
}

// NewGoogleGeocoder creates a Geocoding API adapter sharing the Cloud Vision key.
func NewGoogleGeocoder(cfg *config.Config) *GoogleGeocoder {
	return &GoogleGeocoder{
		client: newClient(cfg.GoogleGeocodeBaseURL, cfg.ProviderTimeout),
		apiKey: cfg.GoogleVisionAPIKey,
	}
}

// Geocode returns every candidate address for c.
func (g *GoogleGeocoder) Geocode(ctx context.Context, c models.Coordinate) (*models.GeocodeResponse, error) {
	var resp models.GeocodeResponse
	req := g.client.R().
		SetQueryParam("key", g.apiKey).
		SetQueryParam("latlng", fmt.Sprintf("%v,%v", c.Latitude, c.Longitude))
	if err := exchange(ctx, googleGeocodeName, "geocoding", req, http.MethodGet, "/geocode/json", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

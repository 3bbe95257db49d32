package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"poi-api/internal/apperr"
	"poi-api/internal/geo"
	"poi-api/internal/models"
	"poi-api/internal/prompt"
	"poi-api/internal/provider"
	"poi-api/internal/storage"
)

// Completer is an adapter answering both text and vision prompts.
type Completer interface {
	provider.TextCompleter
	provider.VisionCompleter
}

// ExtBackends are the adapters exposed one by one on the ext routes.
type ExtBackends struct {
	Vision   provider.ImageAnalyzer
	Geocoder provider.Geocoder
	GPT      Completer
	Gemini   Completer
	Llama    provider.TextCompleter
	Embedder provider.Embedder
}

// ExtService calls a single provider per request.
type ExtService struct {
	images   ImageLoader
	backends ExtBackends
}

// NewExtService creates a new ext service.
func NewExtService(images ImageLoader, backends ExtBackends) *ExtService {
	return &ExtService{images: images, backends: backends}
}

// Vision runs face and text detection on a base64 encoded image.
func (s *ExtService) Vision(ctx context.Context, encoded string) (*models.VisionSummary, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(data) == 0 {
		return nil, apperr.InvalidInput("vision", "image is not valid base64")
	}

	analysis, err := s.backends.Vision.AnalyzeImage(ctx, storage.Encode(data), []models.VisionFeature{
		models.FeatureFaceDetection,
		models.FeatureTextDetection,
	})
	if err != nil {
		return nil, fmt.Errorf("service: vision failed: %w", err)
	}
	summary := analysis.Summary()
	return &summary, nil
}

// Geocoding reverse geocodes coordinate and lists its distinct addresses.
func (s *ExtService) Geocoding(ctx context.Context, coordinate models.Coordinate) (*models.GeocodeSummary, error) {
	if !geo.ValidCoordinate(coordinate) {
		return nil, apperr.InvalidInput("geocoding", geo.MessageOutOfRange)
	}

	resp, err := s.backends.Geocoder.Geocode(ctx, coordinate)
	if err != nil {
		return nil, fmt.Errorf("service: geocoding failed: %w", err)
	}
	return &models.GeocodeSummary{
		GeocodeResponse: resp,
		UniqueAddresses: geo.UniqueAddresses(resp.FormattedAddresses()),
	}, nil
}

func (s *ExtService) GPTCompletion(ctx context.Context, query string) (string, error) {
	return s.complete(ctx, s.backends.GPT, query)
}

func (s *ExtService) GeminiCompletion(ctx context.Context, query string) (string, error) {
	return s.complete(ctx, s.backends.Gemini, query)
}

func (s *ExtService) LlamaCompletion(ctx context.Context, query string) (string, error) {
	return s.complete(ctx, s.backends.Llama, query)
}

// GPTVisual describes the image stored at imagePath.
func (s *ExtService) GPTVisual(ctx context.Context, imagePath string) (string, error) {
	return s.visual(ctx, s.backends.GPT, imagePath)
}

// GeminiVisual describes the image stored at imagePath.
func (s *ExtService) GeminiVisual(ctx context.Context, imagePath string) (string, error) {
	return s.visual(ctx, s.backends.Gemini, imagePath)
}

// Embedding returns one vector per text.
func (s *ExtService) Embedding(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, apperr.InvalidInput("embedding", "text is empty")
	}
	vectors, err := s.backends.Embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("service: embedding failed: %w", err)
	}
	return vectors, nil
}

func (s *ExtService) complete(ctx context.Context, c provider.TextCompleter, query string) (string, error) {
	text, err := c.TextComplete(ctx, prompt.POI, query)
	if err != nil {
		return "", fmt.Errorf("service: %s completion failed: %w", c.Name(), err)
	}
	return text, nil
}

// visual describes the stored image with the POI-visual prompt, the same one the
// pipeline uses for its image stages. The text POI prompt is never sent with an image.
func (s *ExtService) visual(ctx context.Context, c provider.VisionCompleter, imagePath string) (string, error) {
	image, err := s.images.LoadImage(imagePath)
	if err != nil {
		return "", fmt.Errorf("service: failed to read image: %w", err)
	}
	text, err := c.VisionComplete(ctx, prompt.POIVisual, image)
	if err != nil {
		return "", fmt.Errorf("service: %s visual failed: %w", c.Name(), err)
	}
	return text, nil
}

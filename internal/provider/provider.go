// Package provider adapts the external model, vision and geocoding services to a
// common set of capabilities. Every adapter owns one authenticated HTTP client built
// at construction and is safe for concurrent use.
package provider

import (
	"context"

	"poi-api/internal/models"
	"poi-api/internal/prompt"
)

// TextCompleter answers a message under a system prompt.
type TextCompleter interface {
	Name() string
	TextComplete(ctx context.Context, p prompt.Prompt, message string) (string, error)
}

// VisionCompleter answers a prompt about an image.
type VisionCompleter interface {
	Name() string
	VisionComplete(ctx context.Context, p prompt.Prompt, image models.ImagePayload) (string, error)
}

// Embedder turns texts into vectors, one row per input text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, error)
}

// ImageAnalyzer runs feature detection (OCR, faces) on an image.
type ImageAnalyzer interface {
	AnalyzeImage(ctx context.Context, image models.ImagePayload, features []models.VisionFeature) (*models.VisionAnalysis, error)
}

// Geocoder resolves a coordinate to candidate addresses.
type Geocoder interface {
	Geocode(ctx context.Context, c models.Coordinate) (*models.GeocodeResponse, error)
}

// Result is the normalized output of one adapter call. The concrete type tells
// which capability produced it.
type Result interface {
	result()
}

// TextResult is produced by text and vision completions.
type TextResult struct {
	Provider string
	Text     string
}

// GeocodeResult is produced by Geocoder.
type GeocodeResult struct {
	Response *models.GeocodeResponse
}

// VisionResult is produced by ImageAnalyzer.
type VisionResult struct {
	Analysis *models.VisionAnalysis
}

// EmbeddingResult is produced by Embedder.
type EmbeddingResult struct {
	Vectors [][]float64
}

func (TextResult) result()      {}
func (GeocodeResult) result()   {}
func (VisionResult) result()    {}
func (EmbeddingResult) result() {}

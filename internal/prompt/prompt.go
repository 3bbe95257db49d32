// Package prompt is the fixed catalog of system prompts sent to the model backends.
package prompt

import (
	_ "embed"
	"fmt"
)

// Prompt names a template of the catalog.
type Prompt int

const (
	// POI asks a text model to name the point of interest from merged evidence.
	POI Prompt = iota
	// POIVisual asks a vision model to describe the point of interest in a photo.
	POIVisual
	// OCR asks a model to compact raw OCR output.
	OCR
	// Compact asks a model to shorten arbitrary text.
	Compact
)

var (
	//go:embed templates/poi.txt
	poiText string
	//go:embed templates/poi_visual.txt
	poiVisualText string
	//go:embed templates/ocr.txt
	ocrText string
	//go:embed templates/compact.txt
	compactText string
)

// Text returns the template. The catalog is closed, so an unknown value is a bug.
func (p Prompt) Text() string {
	switch p {
	case POI:
		return poiText
	case POIVisual:
		return poiVisualText
	case OCR:
		return ocrText
	case Compact:
		return compactText
	default:
		panic(fmt.Sprintf("prompt: unknown template %d", int(p)))
	}
}

func (p Prompt) String() string {
	switch p {
	case POI:
		return "poi"
	case POIVisual:
		return "poi_visual"
	case OCR:
		return "ocr"
	case Compact:
		return "compact"
	default:
		return fmt.Sprintf("prompt(%d)", int(p))
	}
}

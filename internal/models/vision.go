package models

import "strings"

// VisionFeature selects a Google Vision detection type.
type VisionFeature string

const (
	FeatureDocumentTextDetection VisionFeature = "DOCUMENT_TEXT_DETECTION"
	FeatureTextDetection         VisionFeature = "TEXT_DETECTION"
	FeatureFaceDetection         VisionFeature = "FACE_DETECTION"
)

// VisionAnalysis holds the per-image responses of an images:annotate call.
type VisionAnalysis struct {
	Responses []VisionResponse `json:"responses"`
}

type VisionResponse struct {
	FaceAnnotations    []FaceAnnotation    `json:"faceAnnotations,omitempty"`
	TextAnnotations    []TextAnnotation    `json:"textAnnotations,omitempty"`
	FullTextAnnotation *FullTextAnnotation `json:"fullTextAnnotation,omitempty"`
}

// Text joins the full OCR text of every response with ".".
func (a *VisionAnalysis) Text() string {
	texts := make([]string, 0, len(a.Responses))
	for _, r := range a.Responses {
		if r.FullTextAnnotation != nil {
			texts = append(texts, r.FullTextAnnotation.Text)
		} else {
			texts = append(texts, "")
		}
	}
	return strings.Join(texts, ".")
}

// Faces flattens the face annotations of every response.
func (a *VisionAnalysis) Faces() []FaceAnnotation {
	var faces []FaceAnnotation
	for _, r := range a.Responses {
		faces = append(faces, r.FaceAnnotations...)
	}
	return faces
}

// TextAnnotations flattens the raw text annotations of every response.
func (a *VisionAnalysis) TextAnnotations() []TextAnnotation {
	var annotations []TextAnnotation
	for _, r := range a.Responses {
		annotations = append(annotations, r.TextAnnotations...)
	}
	return annotations
}

type FaceAnnotation struct {
	BoundingPoly           BoundingPoly   `json:"boundingPoly"`
	FdBoundingPoly         BoundingPoly   `json:"fdBoundingPoly"`
	Landmarks              []FaceLandmark `json:"landmarks"`
	RollAngle              float32        `json:"rollAngle"`
	PanAngle               float32        `json:"panAngle"`
	TiltAngle              float32        `json:"tiltAngle"`
	DetectionConfidence    float32        `json:"detectionConfidence"`
	LandmarkingConfidence  float32        `json:"landmarkingConfidence"`
	JoyLikelihood          string         `json:"joyLikelihood"`
	SorrowLikelihood       string         `json:"sorrowLikelihood"`
	AngerLikelihood        string         `json:"angerLikelihood"`
	SurpriseLikelihood     string         `json:"surpriseLikelihood"`
	UnderExposedLikelihood string         `json:"underExposedLikelihood"`
	BlurredLikelihood      string         `json:"blurredLikelihood"`
	HeadwearLikelihood     string         `json:"headwearLikelihood"`
}

type FaceLandmark struct {
	Type     string   `json:"type"`
	Position Position `json:"position"`
}

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type BoundingPoly struct {
	Vertices []Vertex `json:"vertices"`
}

type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type TextAnnotation struct {
	Locale       string       `json:"locale,omitempty"`
	Description  string       `json:"description"`
	BoundingPoly BoundingPoly `json:"boundingPoly"`
}

type FullTextAnnotation struct {
	Text string `json:"text"`
}

// VisionSummary is the digest of an analysis returned by the vision route.
type VisionSummary struct {
	Text            string           `json:"text"`
	Faces           []FaceAnnotation `json:"faces"`
	TextAnnotations []TextAnnotation `json:"text_annotations"`
}

// Summary digests the analysis into its OCR text, faces and raw text annotations.
func (a *VisionAnalysis) Summary() VisionSummary {
	return VisionSummary{
		Text:            a.Text(),
		Faces:           a.Faces(),
		TextAnnotations: a.TextAnnotations(),
	}
}

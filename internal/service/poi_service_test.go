package service

import (
	"context"
	"errors"
	"testing"

	"poi-api/internal/apperr"
	"poi-api/internal/models"
	"poi-api/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testImage = models.ImagePayload{Base64: "aW1n", MimeType: "image/jpeg"}

type poiMocks struct {
	images   *MockImageLoader
	ocr      *MockImageAnalyzer
	geocoder *MockGeocoder
	visualA  *MockCompleter
	visualB  *MockCompleter
	textA    *MockCompleter
	textB    *MockCompleter
}

func newPOIMocks() *poiMocks {
	return &poiMocks{
		images:   new(MockImageLoader),
		ocr:      new(MockImageAnalyzer),
		geocoder: new(MockGeocoder),
		visualA:  &MockCompleter{name: "gemini"},
		visualB:  &MockCompleter{name: "openai"},
		textA:    &MockCompleter{name: "openai"},
		textB:    &MockCompleter{name: "gemini"},
	}
}

func (m *poiMocks) service(concurrent bool) *POIService {
	return NewPOIService(m.images, POIBackends{
		OCR:      m.ocr,
		Geocoder: m.geocoder,
		VisualA:  m.visualA,
		VisualB:  m.visualB,
		TextA:    m.textA,
		TextB:    m.textB,
	}, concurrent)
}

func (m *poiMocks) assertExpectations(t *testing.T) {
	m.images.AssertExpectations(t)
	m.ocr.AssertExpectations(t)
	m.geocoder.AssertExpectations(t)
	m.visualA.AssertExpectations(t)
	m.visualB.AssertExpectations(t)
	m.textA.AssertExpectations(t)
	m.textB.AssertExpectations(t)
}

func geocodeResponse(addresses ...string) *models.GeocodeResponse {
	resp := &models.GeocodeResponse{Status: "OK"}
	for _, a := range addresses {
		resp.Results = append(resp.Results, models.GeocodeEntry{FormattedAddress: a})
	}
	return resp
}

func ocrAnalysis(text string) *models.VisionAnalysis {
	return &models.VisionAnalysis{Responses: []models.VisionResponse{
		{FullTextAnnotation: &models.FullTextAnnotation{Text: text}},
	}}
}

func TestPOIService_FromImage(t *testing.T) {
	coordinate := models.Coordinate{Latitude: 48.8584, Longitude: 2.2945}
	const expectedPrompt = `POI description from person one: An iron lattice tower. ` +
		`Description from another person: The Eiffel Tower at dusk. ` +
		`Potential address: ["Champ de Mars, Paris","5 Av. Anatole France, Paris"]. ` +
		`OCR results: TOUR EIFFEL. Potential GPS lat = 48.8584 ; lng = 2.2945`

	for _, concurrent := range []bool{true, false} {
		name := "sequential"
		if concurrent {
			name = "concurrent"
		}
		t.Run(name, func(t *testing.T) {
			m := newPOIMocks()
			m.images.On("LoadImage", "/tmp/upload.jpg").Return(testImage, nil)
			m.ocr.On("AnalyzeImage", mock.Anything, testImage, []models.VisionFeature{models.FeatureDocumentTextDetection}).
				Return(ocrAnalysis("TOUR EIFFEL"), nil)
			m.geocoder.On("Geocode", mock.Anything, coordinate).
				Return(geocodeResponse("Champ de Mars, Paris", "5 Av. Anatole France, Paris", "Champ de Mars, Paris"), nil)
			m.visualA.On("VisionComplete", mock.Anything, prompt.POIVisual, testImage).Return("An iron lattice tower", nil)
			m.visualB.On("VisionComplete", mock.Anything, prompt.POIVisual, testImage).Return("The Eiffel Tower at dusk", nil)
			m.textA.On("TextComplete", mock.Anything, prompt.POI, expectedPrompt).Return("Eiffel Tower, Paris", nil)
			m.textB.On("TextComplete", mock.Anything, prompt.POI, expectedPrompt).Return("Tour Eiffel", nil)

			pair, err := m.service(concurrent).FromImage(context.Background(), coordinate, "/tmp/upload.jpg")

			require.NoError(t, err)
			assert.Equal(t, &models.SummaryPair{
				Primary:   models.Summary{Provider: "openai", Text: "Eiffel Tower, Paris"},
				Secondary: models.Summary{Provider: "gemini", Text: "Tour Eiffel"},
			}, pair)
			m.assertExpectations(t)
		})
	}
}

func TestPOIService_FromImage_EmptyEvidence(t *testing.T) {
	coordinate := models.Coordinate{Latitude: 0, Longitude: 0}
	const expectedPrompt = `POI description from person one: . Description from another person: . ` +
		`Potential address: []. OCR results: . Potential GPS lat = 0 ; lng = 0`

	m := newPOIMocks()
	m.images.On("LoadImage", "img").Return(testImage, nil)
	m.ocr.On("AnalyzeImage", mock.Anything, testImage, mock.Anything).Return(&models.VisionAnalysis{}, nil)
	m.geocoder.On("Geocode", mock.Anything, coordinate).Return(geocodeResponse(), nil)
	m.visualA.On("VisionComplete", mock.Anything, prompt.POIVisual, testImage).Return("", nil)
	m.visualB.On("VisionComplete", mock.Anything, prompt.POIVisual, testImage).Return("", nil)
	m.textA.On("TextComplete", mock.Anything, prompt.POI, expectedPrompt).Return("unknown", nil)
	m.textB.On("TextComplete", mock.Anything, prompt.POI, expectedPrompt).Return("unknown", nil)

	pair, err := m.service(false).FromImage(context.Background(), coordinate, "img")

	require.NoError(t, err)
	assert.Equal(t, "unknown", pair.Primary.Text)
	m.assertExpectations(t)
}

func TestPOIService_FromImage_InvalidCoordinate(t *testing.T) {
	tests := []struct {
		name       string
		coordinate models.Coordinate
	}{
		{name: "latitude above range", coordinate: models.Coordinate{Latitude: 90.5, Longitude: 0}},
		{name: "latitude below range", coordinate: models.Coordinate{Latitude: -91, Longitude: 0}},
		{name: "longitude above range", coordinate: models.Coordinate{Latitude: 0, Longitude: 180.1}},
		{name: "longitude below range", coordinate: models.Coordinate{Latitude: 0, Longitude: -200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPOIMocks()

			pair, err := m.service(true).FromImage(context.Background(), tt.coordinate, "img")

			assert.Nil(t, pair)
			assert.ErrorIs(t, err, apperr.ErrInvalidInput)
			assert.EqualError(t, err, "poi: invalid input: coordinate out of range")
			m.images.AssertNotCalled(t, "LoadImage", mock.Anything)
			m.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
			m.ocr.AssertNotCalled(t, "AnalyzeImage", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestPOIService_FromImage_DecodeFailure(t *testing.T) {
	m := newPOIMocks()
	storageErr := apperr.Storage("storage.load", errors.New("no such file"))
	m.images.On("LoadImage", "missing.jpg").Return(models.ImagePayload{}, storageErr)

	pair, err := m.service(true).FromImage(context.Background(), models.Coordinate{Latitude: 1, Longitude: 1}, "missing.jpg")

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperr.ErrStorage)
	m.ocr.AssertNotCalled(t, "AnalyzeImage", mock.Anything, mock.Anything, mock.Anything)
	m.visualA.AssertNotCalled(t, "VisionComplete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPOIService_FromImage_StageFailure(t *testing.T) {
	coordinate := models.Coordinate{Latitude: 10, Longitude: 20}
	geocodeErr := apperr.NonSuccessStatus("google_geocode.geocoding", 429)

	for _, concurrent := range []bool{true, false} {
		m := newPOIMocks()
		m.images.On("LoadImage", "img").Return(testImage, nil)
		m.ocr.On("AnalyzeImage", mock.Anything, testImage, mock.Anything).Return(ocrAnalysis("x"), nil).Maybe()
		m.geocoder.On("Geocode", mock.Anything, coordinate).Return(nil, geocodeErr)
		m.visualA.On("VisionComplete", mock.Anything, mock.Anything, mock.Anything).Return("a", nil).Maybe()
		m.visualB.On("VisionComplete", mock.Anything, mock.Anything, mock.Anything).Return("b", nil).Maybe()

		pair, err := m.service(concurrent).FromImage(context.Background(), coordinate, "img")

		assert.Nil(t, pair)
		assert.ErrorIs(t, err, geocodeErr)
		assert.Equal(t, 429, apperr.StatusCode(err))
		m.textA.AssertNotCalled(t, "TextComplete", mock.Anything, mock.Anything, mock.Anything)
		m.textB.AssertNotCalled(t, "TextComplete", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestPOIService_FromImage_SynthesisFailure(t *testing.T) {
	coordinate := models.Coordinate{Latitude: 10, Longitude: 20}

	m := newPOIMocks()
	m.images.On("LoadImage", "img").Return(testImage, nil)
	m.ocr.On("AnalyzeImage", mock.Anything, testImage, mock.Anything).Return(ocrAnalysis("x"), nil)
	m.geocoder.On("Geocode", mock.Anything, coordinate).Return(geocodeResponse("A"), nil)
	m.visualA.On("VisionComplete", mock.Anything, mock.Anything, mock.Anything).Return("a", nil)
	m.visualB.On("VisionComplete", mock.Anything, mock.Anything, mock.Anything).Return("b", nil)
	m.textA.On("TextComplete", mock.Anything, prompt.POI, mock.Anything).Return("", apperr.NoAssistantContent("openai.completion"))

	pair, err := m.service(false).FromImage(context.Background(), coordinate, "img")

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperr.ErrNoAssistantContent)
	m.textB.AssertNotCalled(t, "TextComplete", mock.Anything, mock.Anything, mock.Anything)
}

// blockingVision waits for cancellation, standing in for a slow provider.
type blockingVision struct{}

func (blockingVision) Name() string { return "slow" }

func (blockingVision) VisionComplete(ctx context.Context, _ prompt.Prompt, _ models.ImagePayload) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestPOIService_FromImage_ConcurrentFailureCancelsSiblings(t *testing.T) {
	coordinate := models.Coordinate{Latitude: 10, Longitude: 20}
	geocodeErr := apperr.Transport("google_geocode.geocoding", errors.New("connection refused"))

	m := newPOIMocks()
	m.images.On("LoadImage", "img").Return(testImage, nil)
	m.ocr.On("AnalyzeImage", mock.Anything, testImage, mock.Anything).Return(ocrAnalysis("x"), nil).Maybe()
	m.geocoder.On("Geocode", mock.Anything, coordinate).Return(nil, geocodeErr)

	svc := NewPOIService(m.images, POIBackends{
		OCR:      m.ocr,
		Geocoder: m.geocoder,
		VisualA:  blockingVision{},
		VisualB:  blockingVision{},
		TextA:    m.textA,
		TextB:    m.textB,
	}, true)

	pair, err := svc.FromImage(context.Background(), coordinate, "img")

	assert.Nil(t, pair)
	assert.ErrorIs(t, err, apperr.ErrTransport)
	assert.NotErrorIs(t, err, context.Canceled)
	m.textA.AssertNotCalled(t, "TextComplete", mock.Anything, mock.Anything, mock.Anything)
}

package service

import (
	"context"
	"encoding/json"

	"poi-api/internal/models"
	"poi-api/internal/prompt"

	"github.com/stretchr/testify/mock"
)

// MockImageLoader is a mock implementation of the ImageLoader interface
type MockImageLoader struct {
	mock.Mock
}

func (m *MockImageLoader) LoadImage(path string) (models.ImagePayload, error) {
	args := m.Called(path)
	return args.Get(0).(models.ImagePayload), args.Error(1)
}

// MockImageAnalyzer is a mock implementation of provider.ImageAnalyzer
type MockImageAnalyzer struct {
	mock.Mock
}

func (m *MockImageAnalyzer) AnalyzeImage(ctx context.Context, image models.ImagePayload, features []models.VisionFeature) (*models.VisionAnalysis, error) {
	args := m.Called(ctx, image, features)
	analysis, _ := args.Get(0).(*models.VisionAnalysis)
	return analysis, args.Error(1)
}

// MockGeocoder is a mock implementation of provider.Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, c models.Coordinate) (*models.GeocodeResponse, error) {
	args := m.Called(ctx, c)
	resp, _ := args.Get(0).(*models.GeocodeResponse)
	return resp, args.Error(1)
}

// MockCompleter is a mock implementation of provider.TextCompleter and provider.VisionCompleter
type MockCompleter struct {
	mock.Mock
	name string
}

func (m *MockCompleter) Name() string {
	return m.name
}

func (m *MockCompleter) TextComplete(ctx context.Context, p prompt.Prompt, message string) (string, error) {
	args := m.Called(ctx, p, message)
	return args.String(0), args.Error(1)
}

func (m *MockCompleter) VisionComplete(ctx context.Context, p prompt.Prompt, image models.ImagePayload) (string, error) {
	args := m.Called(ctx, p, image)
	return args.String(0), args.Error(1)
}

// MockEmbedder is a mock implementation of provider.Embedder
type MockEmbedder struct {
	mock.Mock
}

func (m *MockEmbedder) Embed(ctx context.Context, texts []string) ([][]float64, error) {
	args := m.Called(ctx, texts)
	vectors, _ := args.Get(0).([][]float64)
	return vectors, args.Error(1)
}

// MockKeyValueRepository is a mock implementation of KeyValueRepository
type MockKeyValueRepository struct {
	mock.Mock
}

func (m *MockKeyValueRepository) FetchOne(ctx context.Context, id int32) (*models.KeyValue, error) {
	args := m.Called(ctx, id)
	kv, _ := args.Get(0).(*models.KeyValue)
	return kv, args.Error(1)
}

func (m *MockKeyValueRepository) FetchMany(ctx context.Context) ([]models.KeyValue, error) {
	args := m.Called(ctx)
	kvs, _ := args.Get(0).([]models.KeyValue)
	return kvs, args.Error(1)
}

func (m *MockKeyValueRepository) InsertOne(ctx context.Context, body json.RawMessage) (int32, error) {
	args := m.Called(ctx, body)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockKeyValueRepository) InsertMany(ctx context.Context, bodies []json.RawMessage) ([]int32, error) {
	args := m.Called(ctx, bodies)
	ids, _ := args.Get(0).([]int32)
	return ids, args.Error(1)
}

// MockVectorRepository is a mock implementation of VectorRepository
type MockVectorRepository struct {
	mock.Mock
}

func (m *MockVectorRepository) InsertOne(ctx context.Context, vector []float32, metadata json.RawMessage) (int32, error) {
	args := m.Called(ctx, vector, metadata)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockVectorRepository) SearchByDistance(ctx context.Context, vector []float32, limit int) ([]models.KeyValueVector, error) {
	args := m.Called(ctx, vector, limit)
	rows, _ := args.Get(0).([]models.KeyValueVector)
	return rows, args.Error(1)
}

func (m *MockVectorRepository) FindNearestNeighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error) {
	args := m.Called(ctx, id, limit)
	rows, _ := args.Get(0).([]models.KeyValueVector)
	return rows, args.Error(1)
}

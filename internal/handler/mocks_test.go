package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"poi-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUploader is a mock implementation of the Uploader interface
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Persist(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockUploader) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

// MockPOIService is a mock implementation of the POIService interface
type MockPOIService struct {
	mock.Mock
}

func (m *MockPOIService) FromImage(ctx context.Context, coordinate models.Coordinate, imagePath string) (*models.SummaryPair, error) {
	args := m.Called(ctx, coordinate, imagePath)
	pair, _ := args.Get(0).(*models.SummaryPair)
	return pair, args.Error(1)
}

// MockExtService is a mock implementation of the ExtService interface
type MockExtService struct {
	mock.Mock
}

func (m *MockExtService) Vision(ctx context.Context, encoded string) (*models.VisionSummary, error) {
	args := m.Called(ctx, encoded)
	summary, _ := args.Get(0).(*models.VisionSummary)
	return summary, args.Error(1)
}

func (m *MockExtService) Geocoding(ctx context.Context, coordinate models.Coordinate) (*models.GeocodeSummary, error) {
	args := m.Called(ctx, coordinate)
	summary, _ := args.Get(0).(*models.GeocodeSummary)
	return summary, args.Error(1)
}

func (m *MockExtService) GPTCompletion(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockExtService) GeminiCompletion(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockExtService) LlamaCompletion(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}

func (m *MockExtService) GPTVisual(ctx context.Context, imagePath string) (string, error) {
	args := m.Called(ctx, imagePath)
	return args.String(0), args.Error(1)
}

func (m *MockExtService) GeminiVisual(ctx context.Context, imagePath string) (string, error) {
	args := m.Called(ctx, imagePath)
	return args.String(0), args.Error(1)
}

func (m *MockExtService) Embedding(ctx context.Context, texts []string) ([][]float64, error) {
	args := m.Called(ctx, texts)
	vectors, _ := args.Get(0).([][]float64)
	return vectors, args.Error(1)
}

// MockStoreService is a mock implementation of the StoreService interface
type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) Put(ctx context.Context, body json.RawMessage) ([]int32, error) {
	args := m.Called(ctx, body)
	ids, _ := args.Get(0).([]int32)
	return ids, args.Error(1)
}

func (m *MockStoreService) Get(ctx context.Context, id int32) (*models.KeyValue, error) {
	args := m.Called(ctx, id)
	kv, _ := args.Get(0).(*models.KeyValue)
	return kv, args.Error(1)
}

func (m *MockStoreService) List(ctx context.Context) ([]models.KeyValue, error) {
	args := m.Called(ctx)
	kvs, _ := args.Get(0).([]models.KeyValue)
	return kvs, args.Error(1)
}

func (m *MockStoreService) StoreTexts(ctx context.Context, req models.StoreVectorsRequest) ([]int32, error) {
	args := m.Called(ctx, req)
	ids, _ := args.Get(0).([]int32)
	return ids, args.Error(1)
}

func (m *MockStoreService) Search(ctx context.Context, query string, limit int) ([]models.KeyValueVector, error) {
	args := m.Called(ctx, query, limit)
	rows, _ := args.Get(0).([]models.KeyValueVector)
	return rows, args.Error(1)
}

func (m *MockStoreService) Neighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error) {
	args := m.Called(ctx, id, limit)
	rows, _ := args.Get(0).([]models.KeyValueVector)
	return rows, args.Error(1)
}

// multipartRequest builds a request carrying content as the "file" form field.
func multipartRequest(t *testing.T, target string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// serve runs handler against req in a fresh gin test context.
func serve(req *http.Request, params gin.Params, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	handler(c)
	return w
}

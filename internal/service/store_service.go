package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"poi-api/internal/apperr"
	"poi-api/internal/models"
	"poi-api/internal/provider"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// KeyValueRepository defines the interface for JSON document storage
type KeyValueRepository interface {
	FetchOne(ctx context.Context, id int32) (*models.KeyValue, error)
	FetchMany(ctx context.Context) ([]models.KeyValue, error)
	InsertOne(ctx context.Context, body json.RawMessage) (int32, error)
	InsertMany(ctx context.Context, bodies []json.RawMessage) ([]int32, error)
}

// VectorRepository defines the interface for embedding storage
type VectorRepository interface {
	InsertOne(ctx context.Context, vector []float32, metadata json.RawMessage) (int32, error)
	SearchByDistance(ctx context.Context, vector []float32, limit int) ([]models.KeyValueVector, error)
	FindNearestNeighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error)
}

// StoreService keeps JSON documents and text embeddings in Postgres.
type StoreService struct {
	kv       KeyValueRepository
	vectors  VectorRepository
	embedder provider.Embedder
}

// NewStoreService creates a new store service.
func NewStoreService(kv KeyValueRepository, vectors VectorRepository, embedder provider.Embedder) *StoreService {
	return &StoreService{kv: kv, vectors: vectors, embedder: embedder}
}

// Put stores a JSON object, or every element of a JSON array, and returns the new ids.
func (s *StoreService) Put(ctx context.Context, body json.RawMessage) ([]int32, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || !json.Valid(body) {
		return nil, apperr.InvalidInput("store.kv", "body is not valid JSON")
	}

	switch body[0] {
	case '{':
		id, err := s.kv.InsertOne(ctx, body)
		if err != nil {
			return nil, fmt.Errorf("service: failed to store document: %w", err)
		}
		return []int32{id}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, apperr.InvalidInput("store.kv", "body is not valid JSON")
		}
		if len(items) == 0 {
			return nil, apperr.InvalidInput("store.kv", "array is empty")
		}
		ids, err := s.kv.InsertMany(ctx, items)
		if err != nil {
			return nil, fmt.Errorf("service: failed to store documents: %w", err)
		}
		return ids, nil
	default:
		return nil, apperr.InvalidInput("store.kv", "body must be a JSON object or array")
	}
}

func (s *StoreService) Get(ctx context.Context, id int32) (*models.KeyValue, error) {
	kv, err := s.kv.FetchOne(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: failed to fetch document %d: %w", id, err)
	}
	return kv, nil
}

func (s *StoreService) List(ctx context.Context) ([]models.KeyValue, error) {
	kvs, err := s.kv.FetchMany(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list documents: %w", err)
	}
	return kvs, nil
}

// StoreTexts embeds every text and stores each vector with the shared metadata
// plus the text it was computed from.
func (s *StoreService) StoreTexts(ctx context.Context, req models.StoreVectorsRequest) ([]int32, error) {
	vectors, err := s.embed(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	ids := make([]int32, 0, len(vectors))
	for i, vector := range vectors {
		metadata := make(map[string]any, len(req.Metadata)+1)
		for k, v := range req.Metadata {
			metadata[k] = v
		}
		metadata["text"] = req.Text[i]
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, apperr.InvalidInput("store.vectors", "metadata is not serializable")
		}

		id, err := s.vectors.InsertOne(ctx, vector, raw)
		if err != nil {
			return nil, fmt.Errorf("service: failed to store vector: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Search returns the stored vectors closest to the embedding of query.
func (s *StoreService) Search(ctx context.Context, query string, limit int) ([]models.KeyValueVector, error) {
	if query == "" {
		return nil, apperr.InvalidInput("store.search", "query is empty")
	}
	vectors, err := s.embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}
	rows, err := s.vectors.SearchByDistance(ctx, vectors[0], clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("service: vector search failed: %w", err)
	}
	return rows, nil
}

// Neighbors returns the stored vectors closest to the vector with the given id.
func (s *StoreService) Neighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error) {
	rows, err := s.vectors.FindNearestNeighbors(ctx, id, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("service: neighbor search failed: %w", err)
	}
	return rows, nil
}

// embed returns exactly one float32 vector per text.
func (s *StoreService) embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, apperr.InvalidInput("store.embed", "text is empty")
	}
	raw, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("service: embedding failed: %w", err)
	}
	if len(raw) != len(texts) {
		return nil, apperr.Decode("store.embed", fmt.Errorf("got %d vectors for %d texts", len(raw), len(texts)))
	}

	vectors := make([][]float32, len(raw))
	for i, v := range raw {
		vectors[i] = make([]float32, len(v))
		for j, x := range v {
			vectors[i][j] = float32(x)
		}
	}
	return vectors, nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultSearchLimit
	case limit > maxSearchLimit:
		return maxSearchLimit
	default:
		return limit
	}
}

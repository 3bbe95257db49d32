package repository

import (
	"context"
	"encoding/json"

	"poi-api/internal/apperr"
	"poi-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// VectorRepository stores embeddings in the pgvector column of key_value_vector.
// The pool must come from Open so the vector type is registered.
type VectorRepository struct {
	db *pgxpool.Pool
}

// NewVectorRepository creates a new PostgreSQL vector repository
func NewVectorRepository(db *pgxpool.Pool) *VectorRepository {
	return &VectorRepository{db: db}
}

// InsertOne stores vector with its metadata and returns the new id
func (r *VectorRepository) InsertOne(ctx context.Context, vector []float32, metadata json.RawMessage) (int32, error) {
	if len(metadata) == 0 {
		metadata = json.RawMessage(`{}`)
	}

	sql := `INSERT INTO key_value_vector (vector_data, metadata) VALUES ($1, $2) RETURNING id`

	var id int32
	if err := r.db.QueryRow(ctx, sql, pgvector.NewVector(vector), string(metadata)).Scan(&id); err != nil {
		return 0, apperr.Storage("repository.vector.insert_one", err)
	}
	return id, nil
}

// SearchByDistance returns the limit rows closest to vector by L2 distance
func (r *VectorRepository) SearchByDistance(ctx context.Context, vector []float32, limit int) ([]models.KeyValueVector, error) {
	sql := `
		SELECT id, vector_data, metadata, created_at, updated_at
		FROM key_value_vector
		ORDER BY vector_data <-> $1
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, pgvector.NewVector(vector), limit)
	if err != nil {
		return nil, apperr.Storage("repository.vector.search", err)
	}
	return collectVectors(rows, "repository.vector.search")
}

// FindNearestNeighbors returns the limit rows closest to the row with the given id, excluding it
func (r *VectorRepository) FindNearestNeighbors(ctx context.Context, id int32, limit int) ([]models.KeyValueVector, error) {
	sql := `
		SELECT id, vector_data, metadata, created_at, updated_at
		FROM key_value_vector
		WHERE id != $1
		ORDER BY vector_data <-> (
			SELECT vector_data FROM key_value_vector WHERE id = $1
		)
		LIMIT $2
	`

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM key_value_vector WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, apperr.Storage("repository.vector.neighbors", err)
	}
	if !exists {
		return nil, apperr.NotFound("repository.vector.neighbors")
	}

	rows, err := r.db.Query(ctx, sql, id, limit)
	if err != nil {
		return nil, apperr.Storage("repository.vector.neighbors", err)
	}
	return collectVectors(rows, "repository.vector.neighbors")
}

func collectVectors(rows pgx.Rows, op string) ([]models.KeyValueVector, error) {
	defer rows.Close()

	result := []models.KeyValueVector{}
	for rows.Next() {
		var (
			row    models.KeyValueVector
			vector pgvector.Vector
		)
		if err := rows.Scan(&row.ID, &vector, &row.Metadata, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, apperr.Storage(op, err)
		}
		row.VectorData = vector.Slice()
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(op, err)
	}
	return result, nil
}

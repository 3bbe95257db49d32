package repository

import (
	"context"
	"encoding/json"
	"errors"

	"poi-api/internal/apperr"
	"poi-api/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KeyValueRepository stores JSON documents in key_value_store
type KeyValueRepository struct {
	db *pgxpool.Pool
}

// NewKeyValueRepository creates a new PostgreSQL document repository
func NewKeyValueRepository(db *pgxpool.Pool) *KeyValueRepository {
	return &KeyValueRepository{db: db}
}

// FetchOne returns the document with the given id
func (r *KeyValueRepository) FetchOne(ctx context.Context, id int32) (*models.KeyValue, error) {
	sql := `
		SELECT id, json_body, created_at, updated_at
		FROM key_value_store
		WHERE id = $1
	`

	var kv models.KeyValue
	err := r.db.QueryRow(ctx, sql, id).Scan(&kv.ID, &kv.JSONBody, &kv.CreatedAt, &kv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("repository.kv.fetch_one")
		}
		return nil, apperr.Storage("repository.kv.fetch_one", err)
	}

	return &kv, nil
}

// FetchMany returns every document in insertion order
func (r *KeyValueRepository) FetchMany(ctx context.Context) ([]models.KeyValue, error) {
	sql := `
		SELECT id, json_body, created_at, updated_at
		FROM key_value_store
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, apperr.Storage("repository.kv.fetch_many", err)
	}
	defer rows.Close()

	kvs := []models.KeyValue{}
	for rows.Next() {
		var kv models.KeyValue
		if err := rows.Scan(&kv.ID, &kv.JSONBody, &kv.CreatedAt, &kv.UpdatedAt); err != nil {
			return nil, apperr.Storage("repository.kv.fetch_many", err)
		}
		kvs = append(kvs, kv)
	}

	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("repository.kv.fetch_many", err)
	}

	return kvs, nil
}

const insertKeyValue = `INSERT INTO key_value_store (json_body) VALUES ($1) RETURNING id`

// InsertOne stores body and returns its id
func (r *KeyValueRepository) InsertOne(ctx context.Context, body json.RawMessage) (int32, error) {
	var id int32
	if err := r.db.QueryRow(ctx, insertKeyValue, string(body)).Scan(&id); err != nil {
		return 0, apperr.Storage("repository.kv.insert_one", err)
	}
	return id, nil
}

// InsertMany stores every body in one transaction and returns the ids in input order
func (r *KeyValueRepository) InsertMany(ctx context.Context, bodies []json.RawMessage) ([]int32, error) {
	ids := make([]int32, 0, len(bodies))
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, body := range bodies {
			var id int32
			if err := tx.QueryRow(ctx, insertKeyValue, string(body)).Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Storage("repository.kv.insert_many", err)
	}
	return ids, nil
}

//go:build integration

package repository

import (
	"context"
	"encoding/json"
	"testing"

	"poi-api/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jackc/pgx/v5/pgxpool"
)

func setupTestDatabase(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	// Start PostgreSQL container with pgvector
	req := testcontainers.ContainerRequest{
		Image:        "pgvector/pgvector:pg16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	postgresC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		postgresC.Terminate(ctx)
	})

	host, err := postgresC.Host(ctx)
	require.NoError(t, err)

	port, err := postgresC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := "postgres://testuser:testpass@" + host + ":" + port.Port() + "/testdb?sslmode=disable"

	pool, err := Open(ctx, connString)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
	})

	// Open already migrated; a second run must be a no-op
	require.NoError(t, Migrate(ctx, pool))

	return pool
}

func TestKeyValueRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewKeyValueRepository(pool)
	ctx := context.Background()

	id, err := repo.InsertOne(ctx, json.RawMessage(`{"name":"Eiffel Tower"}`))
	require.NoError(t, err)

	ids, err := repo.InsertMany(ctx, []json.RawMessage{
		json.RawMessage(`{"name":"Louvre"}`),
		json.RawMessage(`[1,2,3]`),
	})
	require.NoError(t, err)
	assert.Equal(t, []int32{id + 1, id + 2}, ids)

	kv, err := repo.FetchOne(ctx, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Eiffel Tower"}`, string(kv.JSONBody))
	assert.False(t, kv.CreatedAt.IsZero())

	all, err := repo.FetchMany(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.JSONEq(t, `[1,2,3]`, string(all[2].JSONBody))

	_, err = repo.FetchOne(ctx, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestVectorRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	pool := setupTestDatabase(t)
	repo := NewVectorRepository(pool)
	ctx := context.Background()

	origin, err := repo.InsertOne(ctx, []float32{0, 0, 0}, json.RawMessage(`{"text":"origin"}`))
	require.NoError(t, err)
	near, err := repo.InsertOne(ctx, []float32{1, 0, 0}, json.RawMessage(`{"text":"near"}`))
	require.NoError(t, err)
	far, err := repo.InsertOne(ctx, []float32{10, 10, 10}, nil)
	require.NoError(t, err)

	t.Run("search by distance", func(t *testing.T) {
		rows, err := repo.SearchByDistance(ctx, []float32{0.9, 0, 0}, 2)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, near, rows[0].ID)
		assert.Equal(t, origin, rows[1].ID)
		assert.Equal(t, []float32{1, 0, 0}, rows[0].VectorData)
		assert.JSONEq(t, `{"text":"near"}`, string(rows[0].Metadata))
	})

	t.Run("nearest neighbors exclude the reference", func(t *testing.T) {
		rows, err := repo.FindNearestNeighbors(ctx, origin, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, near, rows[0].ID)
		assert.Equal(t, far, rows[1].ID)
		assert.JSONEq(t, `{}`, string(rows[1].Metadata))
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := repo.FindNearestNeighbors(ctx, 9999, 10)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/hugohenrick/tuckshop/internal/infrastructure/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requer um PostgreSQL acessível em TEST_DATABASE_URL
func requirePostgres(t *testing.T) *database.PostgresDB {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL não definido")
	}

	config := &database.PostgresConfig{URL: url, MaxConnections: 2}
	require.NoError(t, database.RunMigrations(config))

	db, err := database.NewPostgresDB(context.Background(), config)
	require.NoError(t, err)

	_, err = db.Pool().Exec(context.Background(), "DELETE FROM store_collections")
	require.NoError(t, err)
	return db
}

func TestPostgresBackend_StoreCommit(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewPostgresBackend(requirePostgres(t)))
	defer s.Close()

	ok, err := s.Initialized(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	cfg := settings.Default()
	require.NoError(t, s.Commit(ctx, store.Changes{Products: sampleProducts(), Settings: &cfg}))

	products, err := s.Products().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	ok, err = s.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
}

package repository

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/tuckshop/internal/domain/purchase"
	"github.com/hugohenrick/tuckshop/internal/domain/settings"
	"github.com/hugohenrick/tuckshop/internal/domain/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr, client
}

func TestRedisBackend_LoadMissing(t *testing.T) {
	_, client := setupTestRedis(t)
	backend := NewRedisBackendFromClient(client, "test")
	defer backend.Close()

	data, found, err := backend.Load(context.Background(), CollectionProducts)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, data)
}

func TestRedisBackend_SaveUsesNamespacedKeys(t *testing.T) {
	mr, client := setupTestRedis(t)
	backend := NewRedisBackendFromClient(client, "school1")
	defer backend.Close()

	err := backend.Save(context.Background(),
		Write{Collection: "a", Data: []byte(`[1]`)},
		Write{Collection: "b", Data: []byte(`[2]`)},
	)
	require.NoError(t, err)

	a, err := mr.Get("school1:a")
	require.NoError(t, err)
	assert.Equal(t, "[1]", a)
	b, err := mr.Get("school1:b")
	require.NoError(t, err)
	assert.Equal(t, "[2]", b)
}

func TestRedisBackend_DefaultNamespace(t *testing.T) {
	mr, client := setupTestRedis(t)
	backend := NewRedisBackendFromClient(client, "")
	defer backend.Close()

	require.NoError(t, backend.Save(context.Background(), Write{Collection: "x", Data: []byte(`[]`)}))
	assert.True(t, mr.Exists("tuckshop:x"))
}

func TestRedisBackend_StoreCommit(t *testing.T) {
	ctx := context.Background()
	_, client := setupTestRedis(t)
	s := NewStore(NewRedisBackendFromClient(client, "test"))
	defer s.Close()

	cfg := settings.Settings{Currency: settings.CurrencyBWP}
	err := s.Commit(ctx, store.Changes{
		Products:  sampleProducts(),
		Suppliers: []*purchase.Supplier{{ID: "sup1", Name: "Fresh Foods Ltd"}},
		Settings:  &cfg,
	})
	require.NoError(t, err)

	ok, err := s.Initialized(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	products, err := s.Products().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	suppliers, err := s.Suppliers().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Fresh Foods Ltd", suppliers[0].Name)

	got, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.CurrencyBWP, got.Currency)
}

func TestNewRedisBackend_InvalidURL(t *testing.T) {
	_, err := NewRedisBackend(context.Background(), "not-a-url", "test")
	assert.Error(t, err)
}

func TestNewRedisBackend_FromURL(t *testing.T) {
	mr, _ := setupTestRedis(t)

	backend, err := NewRedisBackend(context.Background(), "redis://"+mr.Addr(), "test")
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Save(context.Background(), Write{Collection: "k", Data: []byte(`[]`)}))
	assert.True(t, mr.Exists("test:k"))
}

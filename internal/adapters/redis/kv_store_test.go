package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/hotel-client/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	value := []byte(`{"email":"a@b.com","name":"A","type":"guest"}`)
	require.NoError(t, store.Set(ctx, "user", value))

	got, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

func TestStore_GetMissing(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", []byte("x")))
	require.NoError(t, store.Delete(ctx, "user"))

	got, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op.
	require.NoError(t, store.Delete(ctx, "user"))
	require.NoError(t, store.Delete(ctx, ""))
}

func TestStore_CustomPrefix(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStoreWithPrefix(client, "test-prefix:")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "user", []byte("x")))

	exists := client.Exists(ctx, "test-prefix:user").Val()
	assert.Equal(t, int64(1), exists)
}

func TestStore_EmptyKey(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	store := NewStore(client)
	ctx := context.Background()

	err := store.Set(ctx, "", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key cannot be empty")

	_, err = store.Get(ctx, "")
	require.Error(t, err)
}

package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, path string) *Store {
	t.Helper()
	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SetGetDelete(t *testing.T) {
	store := openTestStore(t, ":memory:")
	ctx := context.Background()

	got, err := store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Set(ctx, "user", []byte("one")))
	require.NoError(t, store.Set(ctx, "user", []byte("two")))

	got, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	require.NoError(t, store.Delete(ctx, "user"))
	require.NoError(t, store.Delete(ctx, "user"))

	got, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")
	ctx := context.Background()

	first, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "user", []byte(`{"email":"a@b.com"}`)))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	got, err := second.Get(ctx, "user")
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com"}`, string(got))
}

func TestStore_EmptyKey(t *testing.T) {
	store := openTestStore(t, ":memory:")
	ctx := context.Background()

	require.Error(t, store.Set(ctx, "", []byte("x")))
	_, err := store.Get(ctx, "")
	require.Error(t, err)
	require.NoError(t, store.Delete(ctx, ""))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "")
	require.Error(t, err)
}

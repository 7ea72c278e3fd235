package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	got, err := s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Nil(t, got)

	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "user", value))
	value[0] = 'z'

	got, err = s.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)
	assert.Equal(t, 1, s.Len())

	got[1] = 'z'
	again, _ := s.Get(ctx, "user")
	assert.Equal(t, []byte("abc"), again)

	require.NoError(t, s.Delete(ctx, "user"))
	require.NoError(t, s.Delete(ctx, "user"))
	assert.Equal(t, 0, s.Len())
}

func TestStore_EmptyKey(t *testing.T) {
	s := New()
	require.Error(t, s.Set(context.Background(), "", nil))
	_, err := s.Get(context.Background(), "")
	require.Error(t, err)
}

package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStateStoreRoundTrip(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	type blob struct {
		Name string `json:"name"`
	}

	require.NoError(t, store.Set(ctx, "k", blob{Name: "x"}, time.Minute))

	var got blob
	found, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "x", got.Name)

	require.NoError(t, store.Delete(ctx, "k"))
	found, err = store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStateStoreExpiry(t *testing.T) {
	store := NewMemoryStateStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", map[string]string{"a": "b"}, -time.Second))

	var got map[string]string
	found, err := store.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found, "expired entries read as missing")
}

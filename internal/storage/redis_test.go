package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestTokenStore(t *testing.T) *TokenStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewTokenStore(client, 7*24*time.Hour)
}

func TestTokenStore_RefreshTokenLifecycle(t *testing.T) {
	store := newTestTokenStore(t)
	ctx := context.Background()

	// Missing token reads as empty, not an error.
	token, err := store.GetRefreshToken(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, token)

	assert.NoError(t, store.SaveRefreshToken(ctx, 7, "refresh-abc"))

	token, err = store.GetRefreshToken(ctx, 7)
	assert.NoError(t, err)
	assert.Equal(t, "refresh-abc", token)

	// Rotation overwrites in place.
	assert.NoError(t, store.SaveRefreshToken(ctx, 7, "refresh-def"))
	token, _ = store.GetRefreshToken(ctx, 7)
	assert.Equal(t, "refresh-def", token)

	assert.NoError(t, store.DeleteRefreshToken(ctx, 7))
	token, err = store.GetRefreshToken(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, token)
}

func TestTokenStore_ReconcileMarkers(t *testing.T) {
	store := newTestTokenStore(t)
	ctx := context.Background()

	key := store.ReconcileMarkerKey(42)
	assert.Equal(t, "reconcile:42", key)

	exists, err := store.Exists(ctx, key)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, store.SetMarker(ctx, key))

	exists, err = store.Exists(ctx, key)
	assert.NoError(t, err)
	assert.True(t, exists)
}

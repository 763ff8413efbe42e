package binding

import (
	"context"
	"testing"

	"blight/internal/lists"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	store, err := NewRedisStore("redis://" + s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, s
}

func TestNewRedisStoreBadURL(t *testing.T) {
	_, err := NewRedisStore("not a url")
	assert.Error(t, err)
}

func TestRedisStoreGetUnknown(t *testing.T) {
	store, _ := setupTestRedis(t)

	_, found, err := store.Get(context.Background(), "dm-1", lists.Enemies)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreSetAndGet(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "dm-1", lists.Allies, "m-1"))

	messageID, found, err := store.Get(ctx, "dm-1", lists.Allies)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "m-1", messageID)

	assert.Equal(t, "m-1", s.HGet("blight:binding:dm-1", "Allies"))

	_, found, err = store.Get(ctx, "dm-1", lists.Enemies)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreSurvivesReconnect(t *testing.T) {
	store, s := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "dm-1", lists.Enemies, "m-9"))
	require.NoError(t, store.Close())

	reopened, err := NewRedisStore("redis://" + s.Addr())
	require.NoError(t, err)
	defer reopened.Close()

	messageID, found, err := reopened.Get(ctx, "dm-1", lists.Enemies)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "m-9", messageID)
}

func TestRedisStoreUnreachable(t *testing.T) {
	store, s := setupTestRedis(t)
	s.Close()

	_, _, err := store.Get(context.Background(), "dm-1", lists.Allies)
	assert.Error(t, err)
}

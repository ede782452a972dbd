package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, 2*time.Hour), mr
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	assert.NoError(t, store.Set(ctx, "k1", payload{Name: "alpha", Count: 3}))

	var got payload
	found, err := store.Get(ctx, "k1", &got)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "alpha", Count: 3}, got)
}

func TestRedisStore_MissingKey(t *testing.T) {
	store, _ := newTestStore(t)

	var dest map[string]string
	found, err := store.Get(context.Background(), "missing", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Set(ctx, "k2", 42))
	assert.NoError(t, store.Delete(ctx, "k2"))

	var dest int
	found, err := store.Get(ctx, "k2", &dest)
	assert.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "k2"))
}

func TestRedisStore_SetAppliesTTL(t *testing.T) {
	store, mr := newTestStore(t)

	assert.NoError(t, store.Set(context.Background(), "k3", "v"))
	assert.Equal(t, 2*time.Hour, mr.TTL("k3"))

	// The key expires once the TTL elapses.
	mr.FastForward(3 * time.Hour)
	var dest string
	found, err := store.Get(context.Background(), "k3", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
}

package kvRepo

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	store, _ := newTestRedisStore(t)

	value, found, err := store.Get(context.Background(), "users:u1:userAppointments")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestRedisStore_SetThenGet(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`[1,2]`)))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[1,2]`, string(value))
	assert.True(t, mr.Exists("storage:k"))
	assert.Zero(t, mr.TTL("storage:k"), "durable values must not expire")
}

func TestRedisStore_ErrorsSurface(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.SetError("READONLY")

	err := store.Set(context.Background(), "k", []byte(`{}`))
	require.Error(t, err)

	_, found, err := store.Get(context.Background(), "k")
	require.Error(t, err)
	assert.False(t, found)
}

func TestLoadJSON(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		var out []int
		found, err := LoadJSON(ctx, store, "absent", &out)
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("malformed", func(t *testing.T) {
		require.NoError(t, mr.Set("storage:broken", "{not json"))
		var out []int
		found, err := LoadJSON(ctx, store, "broken", &out)
		assert.False(t, found)
		assert.True(t, errors.Is(err, ErrMalformed))
	})

	t.Run("round trip", func(t *testing.T) {
		require.NoError(t, SaveJSON(ctx, store, "nums", []int{3, 1, 2}))
		var out []int
		found, err := LoadJSON(ctx, store, "nums", &out)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, []int{3, 1, 2}, out)
	})
}

func TestUserKey(t *testing.T) {
	assert.Equal(t, "users:abc:userProfile", UserKey("abc", "userProfile"))
}

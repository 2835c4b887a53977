package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips both session entries", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		require.NoError(t, store.SetEntry(ctx, "sid-1", FieldToken, "bearer-abc", time.Hour))
		require.NoError(t, store.SetEntry(ctx, "sid-1", FieldUser, `{"email":"a@b.c"}`, time.Hour))

		token, err := store.GetEntry(ctx, "sid-1", FieldToken)
		require.NoError(t, err)
		assert.Equal(t, "bearer-abc", token)

		user, err := store.GetEntry(ctx, "sid-1", FieldUser)
		require.NoError(t, err)
		assert.Equal(t, `{"email":"a@b.c"}`, user)
	})

	t.Run("missing entry yields ErrNotFound", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		_, err := store.GetEntry(ctx, "nope", FieldToken)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("entries expire with the ttl", func(t *testing.T) {
		store, mr := setupRedisStore(t)

		require.NoError(t, store.SetEntry(ctx, "sid-2", FieldToken, "bearer", time.Minute))
		mr.FastForward(2 * time.Minute)

		_, err := store.GetEntry(ctx, "sid-2", FieldToken)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete removes only the named fields", func(t *testing.T) {
		store, _ := setupRedisStore(t)

		require.NoError(t, store.SetEntry(ctx, "sid-3", FieldToken, "bearer", time.Hour))
		require.NoError(t, store.SetEntry(ctx, "sid-3", FieldUser, "{}", time.Hour))
		require.NoError(t, store.DeleteEntries(ctx, "sid-3", FieldToken))

		_, err := store.GetEntry(ctx, "sid-3", FieldToken)
		assert.ErrorIs(t, err, ErrNotFound)

		user, err := store.GetEntry(ctx, "sid-3", FieldUser)
		require.NoError(t, err)
		assert.Equal(t, "{}", user)
	})
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("round trips entries", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.SetEntry(ctx, "sid", FieldToken, "bearer", time.Hour))
		value, err := store.GetEntry(ctx, "sid", FieldToken)
		require.NoError(t, err)
		assert.Equal(t, "bearer", value)
	})

	t.Run("expired entries are gone", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.SetEntry(ctx, "sid", FieldToken, "bearer", time.Nanosecond))
		time.Sleep(5 * time.Millisecond)

		_, err := store.GetEntry(ctx, "sid", FieldToken)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		store := NewMemoryStore()

		require.NoError(t, store.DeleteEntries(ctx, "sid", FieldToken, FieldUser))
		require.NoError(t, store.SetEntry(ctx, "sid", FieldUser, "{}", 0))
		require.NoError(t, store.DeleteEntries(ctx, "sid", FieldUser))

		_, err := store.GetEntry(ctx, "sid", FieldUser)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

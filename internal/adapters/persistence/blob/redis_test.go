package blob

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client)
}

func TestRedisStoreRoundtrip(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	_, err := store.Get(ctx, "amps_players")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "amps_players", []byte(`[{"id":"p1"}]`)))

	got, err := store.Get(ctx, "amps_players")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, string(got))
}

func TestRedisStoreDelete(t *testing.T) {
	store := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "amps_session", []byte(`null`)))
	require.NoError(t, store.Delete(ctx, "amps_session"))

	_, err := store.Get(ctx, "amps_session")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, "amps_teams", []byte(`[{"id":"t1"}]`)))

	got, err := store.Get(ctx, "amps_teams")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"t1"}]`, string(got))

	// Overwrite replaces the whole value
	require.NoError(t, store.Set(ctx, "amps_teams", []byte(`[]`)))
	got, err = store.Get(ctx, "amps_teams")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestFileStoreDelete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "amps_session", []byte(`null`)))
	require.NoError(t, store.Delete(ctx, "amps_session"))

	_, err = store.Get(ctx, "amps_session")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, store.Delete(ctx, "amps_session"))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "amps_settings", []byte(`{"schoolName":"Greenwood College"}`)))
	require.NoError(t, store.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "amps_settings")
	require.NoError(t, err)
	assert.Contains(t, string(got), "Greenwood College")
}

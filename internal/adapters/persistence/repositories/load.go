package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"amps-backend/internal/adapters/persistence/blob"
)

// loadCollection hydrates a collection from its storage key. A missing key is
// the normal first-run case; corrupt JSON is logged and replaced by the seed.
func loadCollection[T any](store blob.Store, key string, seed T) T {
	data, err := store.Get(context.Background(), key)
	if err != nil {
		if !errors.Is(err, blob.ErrKeyNotFound) {
			log.Printf("⚠️ %s: read failed, falling back to seed data: %v", key, err)
		}
		return seed
	}

	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		log.Printf("⚠️ %s: corrupt persisted data, falling back to seed data: %v", key, err)
		return seed
	}
	return out
}

// persist rewrites a collection under its storage key
func persist[T any](ctx context.Context, store blob.Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, data)
}

// Package blob provides the per-key durable JSON store every collection
// persists into. Each collection owns exactly one key; a whole collection is
// rewritten on every mutation and read back once at startup.
package blob

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has never been written
var ErrKeyNotFound = errors.New("blob: key not found")

// Store is a durable key -> JSON value store
type Store interface {
	// Get returns the value stored under key, or ErrKeyNotFound
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the value stored under key
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases the underlying resources
	Close() error
}

package blob

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces all application blobs in a shared Redis instance
const keyPrefix = "amps:blob:"

// redisStore persists each key as one Redis string value
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store using the given client
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	// No TTL: collections live until explicitly rewritten
	return s.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}

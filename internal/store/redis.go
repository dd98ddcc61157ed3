package store

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisStore is the Redis-backed Store used when the service runs with a
// shared persistence backend. Keys are namespaced to keep the flat layout
// from colliding with other users of the same Redis database.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)

const defaultKeyPrefix = "ridelite:"

// NewRedisStore creates a RedisStore on top of an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultKeyPrefix}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	// Records live until explicitly removed; no TTL.
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

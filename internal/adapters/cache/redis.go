package cache

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"conferencecentral/internal/domain"
)

// redisStore implements domain.CacheStore on a Redis client. Values have no
// TTL; slots live until overwritten or deleted.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a CacheStore backed by the given Redis client.
func NewRedisStore(client *redis.Client) domain.CacheStore {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		// Absent slot reads as empty, not as an error.
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

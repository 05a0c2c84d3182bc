package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nfrund/orderdesk/internal/domain"
)

// DefaultRedisKey is the key used when none is configured.
const DefaultRedisKey = "orderdesk:session:token"

const redisOpTimeout = 2 * time.Second

// RedisStore keeps the token under a single Redis key without expiry.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a RedisStore using the default key.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return NewRedisStoreWithKey(client, DefaultRedisKey)
}

// NewRedisStoreWithKey creates a RedisStore with a custom key.
func NewRedisStoreWithKey(client redis.UniversalClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load() (domain.Token, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Error("Failed to read session token from redis", "key", s.key, "error", err)
		}
		return "", false
	}
	token := domain.Token(val)
	return token, !token.IsZero()
}

func (s *RedisStore) Save(token domain.Token) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, string(token), 0).Err(); err != nil {
		slog.Error("Failed to write session token to redis", "key", s.key, "error", err)
	}
}

func (s *RedisStore) Clear() {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		slog.Error("Failed to delete session token from redis", "key", s.key, "error", err)
	}
}

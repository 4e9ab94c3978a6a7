package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in redis with a TTL matching their expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Create(ctx context.Context, ident Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		return "", fmt.Errorf("session: ttl must be positive")
	}
	data, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("session: marshal: %w", err)
	}
	token := NewToken()
	if err := r.client.Set(ctx, r.key(token), data, ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Identity, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ident Identity
	if err := json.Unmarshal([]byte(val), &ident); err != nil {
		return nil, fmt.Errorf("session: unmarshal: %w", err)
	}
	return &ident, nil
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}

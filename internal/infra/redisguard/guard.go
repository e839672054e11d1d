package redisguard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard - ключ "в работе" в Redis, общий для всех реплик сервиса
type Guard struct {
	client *redis.Client
	prefix string
}

func New(client *redis.Client, prefix string) *Guard {
	return &Guard{client: client, prefix: prefix}
}

func (g *Guard) key(key string) string {
	return g.prefix + key
}

// Acquire - SET NX с TTL; false, если ключ уже занят
func (g *Guard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.key(key), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", g.key(key), err)
	}
	return ok, nil
}

func (g *Guard) Release(ctx context.Context, key string) error {
	if err := g.client.Del(ctx, g.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", g.key(key), err)
	}
	return nil
}

func (g *Guard) Held(ctx context.Context, key string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", g.key(key), err)
	}
	return n > 0, nil
}

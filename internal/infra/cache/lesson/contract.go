package lesson

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient подмножество *redis.Client, которое использует кэш
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Redis stores answers in Redis under prefix with a TTL.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedis(client *redis.Client, prefix string, ttl time.Duration, log zerolog.Logger) *Redis {
	return &Redis{client: client, prefix: prefix, ttl: ttl, log: log}
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("redis cache get failed")
		return "", false
	}
	return v, true
}

func (c *Redis) Set(ctx context.Context, key, value string) {
	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis cache set failed")
	}
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/fuel-service/internal/metrics"
)

// DefaultRedisKeyPrefix namespaces every key written by RedisCache.
const DefaultRedisKeyPrefix = "fuel-service:"

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// RedisCache stores JSON-encoded values in Redis with a fixed TTL.
// Redis errors are logged and reported as misses so lookups fall through to the store.
type RedisCache[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache. An empty prefix selects DefaultRedisKeyPrefix.
func NewRedisCache[V any](client redis.UniversalClient, prefix string, ttl time.Duration) *RedisCache[V] {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisCache[V]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisCache[V]) key(k string) string {
	return c.prefix + k
}

// Get returns the decoded value for key.
func (c *RedisCache[V]) Get(ctx context.Context, key string) (V, bool) {
	var value V

	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.RecordCacheOperation("get", "miss")
		return value, false
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache get failed")
		metrics.RecordCacheOperation("get", "error")
		return value, false
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache entry undecodable, dropping")
		_ = c.client.Del(ctx, c.key(key)).Err()
		metrics.RecordCacheOperation("get", "error")
		var zero V
		return zero, false
	}

	metrics.RecordCacheOperation("get", "hit")
	return value, true
}

// Set stores value under key with the configured TTL.
func (c *RedisCache[V]) Set(ctx context.Context, key string, value V) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache encode failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}

	if err := c.client.Set(ctx, c.key(key), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache set failed")
		metrics.RecordCacheOperation("set", "error")
		return
	}
	metrics.RecordCacheOperation("set", "success")
}

// Invalidate deletes key.
func (c *RedisCache[V]) Invalidate(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis cache invalidate failed")
		metrics.RecordCacheOperation("invalidate", "error")
		return
	}
	metrics.RecordCacheOperation("invalidate", "success")
}

// Clear deletes every key under the cache prefix.
func (c *RedisCache[V]) Clear(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	batch := make([]string, 0, 100)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := c.client.Del(ctx, batch...).Err()
		batch = batch[:0]
		return err
	}

	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == cap(batch) {
			if err := flush(); err != nil {
				log.Warn().Err(err).Msg("redis cache clear failed")
				metrics.RecordCacheOperation("clear", "error")
				return
			}
		}
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Msg("redis cache scan failed")
		metrics.RecordCacheOperation("clear", "error")
		return
	}
	if err := flush(); err != nil {
		log.Warn().Err(err).Msg("redis cache clear failed")
		metrics.RecordCacheOperation("clear", "error")
		return
	}
	metrics.RecordCacheOperation("clear", "success")
}

// Stop is a no-op; the client is owned and closed by the caller.
func (c *RedisCache[V]) Stop() {}

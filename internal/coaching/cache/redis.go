package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/squashcoach/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type RedisCache struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client: client,
		now:    time.Now,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (_ Entry, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cache.key", key))

	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		log.Tracef("cache miss in redis for [%s]", key)
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis get [%s]: %w", key, err)
	}

	entry, err := decode(raw)
	if err != nil {
		return Entry{}, false, err
	}
	if entry.Expired(c.now()) {
		log.Debugf("cached entry for [%s] expired at %s", key, entry.ExpiresAt)
		return Entry{}, false, nil
	}

	span.SetAttributes(attribute.Bool("cache.hit", true))
	return entry, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.redis.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("cache.key", key))

	raw, err := encode(data, expiry(c.now(), ttl))
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set [%s]: %w", key, err)
	}
	return nil
}

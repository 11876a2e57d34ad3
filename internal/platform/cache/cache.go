// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache is the JSON read-through cache in front of slow-changing reads.

Cache failures degrade to a database read: [Fetch] logs them and calls the
loader. Only values that are safe to serve slightly stale go through here.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bazaar/internal/platform/ctxutil"
)

// Store keeps JSON-encoded values with a TTL.
type Store interface {
	// Get decodes the value at key into dest. found is false on a miss.
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// # Redis

// RedisStore is a [Store] on a go-redis client.
type RedisStore struct {
	client redis.UniversalClient
}

// NewRedisStore wraps client.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache: get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("cache: decode %s: %w", key, err)
	}
	return true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: delete %v: %w", keys, err)
	}
	return nil
}

// # Noop

// Noop never stores anything; every Get is a miss.
type Noop struct{}

func (Noop) Get(context.Context, string, any) (bool, error)        { return false, nil }
func (Noop) Set(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Delete(context.Context, ...string) error               { return nil }

// # Read-through

// Fetch returns the cached value at key, or calls load and caches its result.
//
// Store errors are logged and ignored. Errors from load are returned and
// nothing is cached.
func Fetch[T any](ctx context.Context, store Store, key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	logger := ctxutil.GetLogger(ctx)

	var cached T
	found, err := store.Get(ctx, key, &cached)
	if err != nil {
		logger.WarnContext(ctx, "cache_read_failed", slog.String("key", key), slog.Any("error", err))
	}
	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := store.Set(ctx, key, value, ttl); err != nil {
		logger.WarnContext(ctx, "cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}
	return value, nil
}

// Invalidate deletes keys, logging instead of failing.
func Invalidate(ctx context.Context, store Store, keys ...string) {
	if err := store.Delete(ctx, keys...); err != nil {
		ctxutil.GetLogger(ctx).WarnContext(ctx, "cache_invalidate_failed",
			slog.Any("keys", keys), slog.Any("error", err))
	}
}

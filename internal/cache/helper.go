package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON fetches a key and unmarshals it into dest. Returns ErrCacheMiss
// when the key is absent or the cache is unavailable.
func GetJSON(ctx context.Context, key string, dest any) error {
	if client == nil {
		return ErrCacheMiss
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value and stores it under key with the given TTL.
// A nil client makes this a no-op.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, ttl).Err()
}

// Aside implements the cache-aside pattern: return the cached value if
// present, otherwise call fetch, cache the result, and return it. Cache
// failures never fail the request.
func Aside[T any](ctx context.Context, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var cached T
	if err := GetJSON(ctx, key, &cached); err == nil {
		return cached, nil
	}

	fresh, err := fetch()
	if err != nil {
		return fresh, err
	}

	_ = SetJSON(ctx, key, fresh, ttl)
	return fresh, nil
}

// Delete removes the given keys. A nil client makes this a no-op.
func Delete(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

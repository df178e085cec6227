package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit the cached JSON value is
// unmarshaled into dest; on a miss (or with no Redis configured) load is run
// and the freshly loaded dest is cached with the given TTL. Cache failures
// never fail the read; the store stays the source of truth.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client != nil {
		raw, err := client.Get(ctx, key).Bytes()
		if err == nil {
			if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
				return nil
			}
			// Corrupt entry; drop it and fall through to the loader.
			client.Del(ctx, key)
		} else if !errors.Is(err, redis.Nil) {
			// Redis unavailable; serve from the store.
		}
	}

	if err := load(); err != nil {
		return err
	}

	if client != nil {
		if raw, err := json.Marshal(dest); err == nil {
			client.Set(ctx, key, raw, ttl)
		}
	}

	return nil
}

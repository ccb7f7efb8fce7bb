package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Remember serves key from the cache, or calls load and stores its result before
// returning. Load errors are returned untouched and never cached. A failed fill only
// costs the next caller a load, so it is logged and swallowed.
func Remember[T any](ctx context.Context, c RedisCache, key string, ttlSeconds int, load func(context.Context) (T, error)) (T, error) {
	var value T

	if err := c.Get(ctx, key, &value); err == nil {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := c.Save(context.WithoutCancel(ctx), key, value, ttlSeconds); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to fill cache")
	}

	return value, nil
}

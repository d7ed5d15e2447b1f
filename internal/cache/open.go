package cache

import (
	"context"
	"fmt"

	"github.com/xrplsale/xrplsale-launchpad-sub000/internal/config"
)

// Open builds the configured store. The returned close func releases any
// connection and is never nil.
func Open(ctx context.Context, cfg config.CacheConfig) (Store, func() error, error) {
	switch cfg.Backend {
	case config.CacheMemory, "":
		return NewMemoryStore(), func() error { return nil }, nil
	case config.CacheRedis:
		store, err := NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
}

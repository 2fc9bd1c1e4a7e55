package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// Store is a string key-value store with per-key expiration
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewStore builds the store selected by CACHE_DRIVER. It returns a nil
// Store when caching is disabled.
func NewStore(cfg *config.Config) (Store, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverNone:
		return nil, nil
	case config.CacheDriverMemory, "":
		return NewMemoryStore(cfg.Cache.CleanupInterval), nil
	case config.CacheDriverRedis:
		client, err := NewRedisClient(cfg)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
}

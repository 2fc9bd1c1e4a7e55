package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

// AnnotationCache memoizes annotation results by content key
type AnnotationCache interface {
	Get(ctx context.Context, key string) (*entities.AnnotationResult, error)
	Set(ctx context.Context, key string, result *entities.AnnotationResult) error
}

type annotationCache struct {
	store Store
	ttl   time.Duration
}

// NewAnnotationCache stores results in store for ttl
func NewAnnotationCache(store Store, ttl time.Duration) AnnotationCache {
	return &annotationCache{
		store: store,
		ttl:   ttl,
	}
}

func (c *annotationCache) key(key string) string {
	return fmt.Sprintf("annotation:%s", key)
}

// Get returns nil, nil on a miss
func (c *annotationCache) Get(ctx context.Context, key string) (*entities.AnnotationResult, error) {
	data, ok, err := c.store.Get(ctx, c.key(key))
	if err != nil || !ok {
		return nil, err
	}
	var result entities.AnnotationResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *annotationCache) Set(ctx context.Context, key string, result *entities.AnnotationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.store.Set(ctx, c.key(key), string(data), c.ttl)
}

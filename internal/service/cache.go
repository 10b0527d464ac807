package service

import (
	"context"
	"time"

	"gymhub/internal/cache"
)

// Cache defines the cache operations the services use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Ensure the redis client satisfies Cache
var _ Cache = (*cache.Client)(nil)

// Package cache stores assembled pages keyed by request and indexed by revalidation tag.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is absent or expired
var ErrMiss = errors.New("cache miss")

// Cache is a tag-invalidated byte cache
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key and indexes it by every tag. A zero ttl stores nothing.
	Set(ctx context.Context, key string, value []byte, tags []string, ttl time.Duration) error
	// InvalidateTags drops every entry indexed by any of the tags and returns how many were removed
	InvalidateTags(ctx context.Context, tags ...string) (int, error)
	HealthCheck(ctx context.Context) error
	Close() error
}

// Package cache provides a small TTL key/value store used to memoize the
// dashboard listing between uploads.
package cache

import (
	"context"
	"errors"
	"time"
)

const (
	// DashboardKey is the cache key for the deck dashboard payload.
	DashboardKey = "dashboard_data"
	// DashboardTTL bounds how stale the dashboard may get when invalidation
	// is missed.
	DashboardTTL = 5 * time.Minute
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is the cache contract shared by the API and worker.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

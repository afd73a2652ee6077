// Package cache defines the cache contract shared by the in-process and Redis backends.
package cache

import "context"

// Cache stores values by string key with backend-defined expiry.
// Backends treat their own failures as misses.
type Cache[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics[V any] interface {
	Cache[V]
	Metrics() Metrics
}

// Noop is a Cache that never stores anything.
type Noop[V any] struct{}

// Get always misses.
func (Noop[V]) Get(context.Context, string) (V, bool) {
	var zero V
	return zero, false
}

// Set discards the value.
func (Noop[V]) Set(context.Context, string, V) {}

// Invalidate does nothing.
func (Noop[V]) Invalidate(context.Context, string) {}

// Clear does nothing.
func (Noop[V]) Clear(context.Context) {}

// Stop does nothing.
func (Noop[V]) Stop() {}

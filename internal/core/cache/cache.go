// Package cache provides the process-local TTL cache that shields the backend
// from repeated lookups.
//
// Expiry is lazy: a read past an entry's deadline removes it and reports a miss.
// There is no background sweeper, so keys that are written and never read again
// stay in memory until they are overwritten, deleted or the cache is cleared.
package cache

import (
	"context"
	"sync"
	"time"

	"blogapi.app/internal/ports"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// MinTTL is the shortest lifetime an entry can have.
const MinTTL = time.Second

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a concurrency-safe key/value store with per-entry expiry.
// The zero value is not usable; construct with New.
type Cache[V any] struct {
	mu    sync.Mutex
	data  map[string]entry[V]
	stats ports.CacheStats

	clock clockwork.Clock
	loads singleflight.Group
}

type options struct {
	clock clockwork.Clock
}

// Option configures a Cache.
type Option func(*options)

// WithClock replaces the wall clock, mainly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// New creates an empty cache.
func New[V any](opts ...Option) *Cache[V] {
	o := options{clock: clockwork.NewRealClock()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Cache[V]{
		data:  make(map[string]entry[V]),
		clock: o.clock,
	}
}

// Get returns the live value stored under key. A lapsed entry is removed and
// counted both as expired and as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		c.stats.Misses++
		return zero, false
	}

	if !now.Before(e.expiresAt) {
		delete(c.data, key)
		c.stats.Expired++
		c.stats.Misses++
		return zero, false
	}

	c.stats.Hits++
	return e.value, true
}

// Set stores value under key, replacing any previous entry. ttl below MinTTL is raised to MinTTL.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl < MinTTL {
		ttl = MinTTL
	}
	expiresAt := c.clock.Now().Add(ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = entry[V]{value: value, expiresAt: expiresAt}
	c.stats.Sets++
}

// Delete removes key. Deleting an absent key is not an error and is still counted.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, key)
	c.stats.Deletes++
}

// Clear drops every entry. Counters are kept.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[string]entry[V])
}

// Snapshot returns the number of stored entries and a copy of the counters.
func (c *Cache[V]) Snapshot() ports.CacheSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return ports.CacheSnapshot{
		Items: len(c.data),
		Stats: c.stats,
	}
}

// GetOrLoad returns the cached value for key or calls load and caches its result for ttl.
// Concurrent misses on the same key share one load call. Load errors are returned and
// nothing is cached. The cache lock is never held while load runs.
//
// The shared load keeps the values of ctx but not its cancellation: a caller that
// gives up stops waiting without failing the others still waiting on the same key.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	return c.load(ctx, key, ttl, load)
}

func (c *Cache[V]) load(ctx context.Context, key string, ttl time.Duration, load func(context.Context) (V, error)) (V, error) {
	loadCtx := context.WithoutCancel(ctx)
	ch := c.loads.DoChan(key, func() (interface{}, error) {
		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v, ttl)
		return v, nil
	})

	var zero V
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	}
}

// Fetch is GetOrLoad for a cache holding values of mixed types. A cached value of
// an unexpected type is treated as a miss and replaced.
func Fetch[T any](ctx context.Context, c *Cache[any], key string, ttl time.Duration, load func(context.Context) (T, error)) (T, error) {
	var zero T

	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	v, err := c.load(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return load(ctx)
	})
	if err != nil {
		return zero, err
	}

	typed, _ := v.(T)
	return typed, nil
}

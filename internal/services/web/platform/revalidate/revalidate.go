// Package revalidate caches rendered page data for a fixed interval.
//
// Each key holds the last successful snapshot. A lookup older than the
// interval triggers one refresh shared by every concurrent caller of that
// key. When the refresh fails and a snapshot exists, the stale snapshot is
// served and the failure is logged.
package revalidate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bfarth20/malexanderportfolio/internal/platform/metrics"
	"github.com/bfarth20/malexanderportfolio/internal/platform/timeouts"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultInterval is the refresh interval used when none is configured.
const DefaultInterval = 600 * time.Second

// Recorder observes cache lookups.
type Recorder interface {
	ObservePageCache(page, result string)
}

// Option customizes a Cache.
type Option func(*Cache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets the logger used for refresh failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRecorder sets the lookup recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Cache) {
		c.recorder = r
	}
}

// WithRefreshTimeout bounds each refresh. Refreshes are detached from the
// triggering request so one abandoned request does not fail the others
// waiting on it.
func WithRefreshTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.refreshTimeout = d
		}
	}
}

// Cache stores page snapshots by key. The zero value is not usable; a nil
// *Cache disables caching.
type Cache struct {
	interval       time.Duration
	refreshTimeout time.Duration
	now            func() time.Time
	logger         *zap.Logger
	recorder       Recorder

	group   singleflight.Group
	mu      sync.Mutex
	entries map[string]entry
}

type entry struct {
	value     any
	fetchedAt time.Time
}

// New builds a cache refreshing entries older than interval. An interval of
// zero or less returns nil, which disables caching.
func New(interval time.Duration, opts ...Option) *Cache {
	if interval <= 0 {
		return nil
	}
	c := &Cache{
		interval:       interval,
		refreshTimeout: timeouts.ContentRequest,
		now:            time.Now,
		logger:         zap.NewNop(),
		entries:        make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Interval reports the refresh interval; zero when caching is disabled.
func (c *Cache) Interval() time.Duration {
	if c == nil {
		return 0
	}
	return c.interval
}

// Invalidate drops key's snapshot so the next lookup refreshes.
func (c *Cache) Invalidate(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// Load returns the snapshot for key, calling fetch when the snapshot is
// missing or older than the interval. With a nil cache every call fetches.
func Load[T any](ctx context.Context, c *Cache, key string, fetch func(context.Context) (T, error)) (T, error) {
	if c == nil {
		return fetch(ctx)
	}

	stale, hasStale, fresh := c.lookup(key)
	if fresh {
		if v, ok := stale.(T); ok {
			c.record(key, metrics.CacheHit)
			return v, nil
		}
		hasStale = false
	}

	result, err, _ := c.group.Do(key, func() (any, error) {
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.refreshTimeout)
		defer cancel()
		v, err := fetch(refreshCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err == nil {
		v, ok := result.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("revalidate: key %q holds %T", key, result)
		}
		c.record(key, metrics.CacheRefresh)
		return v, nil
	}

	if v, ok := stale.(T); ok && hasStale {
		c.logger.Warn("page refresh failed, serving stale data",
			zap.String("page", key),
			zap.Error(err),
		)
		c.record(key, metrics.CacheStale)
		return v, nil
	}
	c.record(key, metrics.CacheError)
	var zero T
	return zero, err
}

func (c *Cache) lookup(key string) (value any, ok bool, fresh bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false, false
	}
	return e.value, true, c.now().Sub(e.fetchedAt) < c.interval
}

func (c *Cache) store(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
}

func (c *Cache) record(key, result string) {
	if c.recorder != nil {
		c.recorder.ObservePageCache(key, result)
	}
}

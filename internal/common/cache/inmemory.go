package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const evictionSlack = time.Minute

type InMemoryClient[T any] struct {
	cache           *gocache.Cache
	now             func() time.Time
	cleanupInterval time.Duration
}

type cachedValue[T any] struct {
	Value T
	ExpAt time.Time
}

func (cv cachedValue[T]) expired(now time.Time) bool {
	return !cv.ExpAt.IsZero() && !now.Before(cv.ExpAt)
}

type InMemoryOption func(*inMemoryOptions)

type inMemoryOptions struct {
	cleanupInterval time.Duration
	now             func() time.Time
}

// WithCleanupInterval starts go-cache's janitor goroutine when d is positive. By default there
// is none and expired entries are dropped when they are read.
func WithCleanupInterval(d time.Duration) InMemoryOption {
	return func(o *inMemoryOptions) { o.cleanupInterval = d }
}

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) InMemoryOption {
	return func(o *inMemoryOptions) { o.now = now }
}

func NewInMemoryClient[T any](opts ...InMemoryOption) *InMemoryClient[T] {
	o := inMemoryOptions{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	return &InMemoryClient[T]{
		cache:           gocache.New(gocache.NoExpiration, o.cleanupInterval),
		now:             o.now,
		cleanupInterval: o.cleanupInterval,
	}
}

func (m *InMemoryClient[T]) Get(ctx context.Context, key string) (result T, err error) {
	raw, found := m.cache.Get(key)
	if !found {
		return result, ErrNotExists
	}

	val, ok := raw.(cachedValue[T])
	if !ok {
		return result, ErrInvalidType
	}

	if val.expired(m.now()) {
		m.cache.Delete(key)
		return result, ErrNotExists
	}

	return val.Value, nil
}

func (m *InMemoryClient[T]) Set(ctx context.Context, key string, object T, ttl time.Duration) error {
	cv := cachedValue[T]{Value: object}
	evictAfter := gocache.NoExpiration
	if ttl > 0 {
		cv.ExpAt = m.now().Add(ttl)
		// go-cache expires on wall clock; expiry itself is decided by m.now
		evictAfter = ttl + evictionSlack
	}

	m.cache.Set(key, cv, evictAfter)
	return nil
}

func (m *InMemoryClient[T]) Flush(ctx context.Context) error {
	m.cache.Flush()
	return nil
}

func (m *InMemoryClient[T]) Len() int {
	return m.cache.ItemCount()
}

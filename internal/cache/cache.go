package cache

import (
	"context"
	"math"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/TemirB/address-lookup/internal/observability"
)

// unbounded is the lru size used when no capacity is configured.
const unbounded = math.MaxInt32

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a TTL cache keyed by string. Entries older than ttl are never served.
// When a capacity is set, the entry with the oldest storedAt is evicted first:
// reads go through Peek so only writes move an entry to the front of the lru.
type Cache[V any] struct {
	name    string
	ttl     time.Duration
	max     int
	now     func() time.Time
	metrics observability.Metrics
	lru     *lru.Cache[string, entry[V]]

	// mu orders Put against Sweep's check-then-remove.
	mu sync.Mutex
}

type Option func(*options)

type options struct {
	max     int
	now     func() time.Time
	metrics observability.Metrics
}

// WithMaxEntries bounds the cache. Zero or less means unbounded.
func WithMaxEntries(n int) Option {
	return func(o *options) { o.max = n }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithMetrics(m observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func New[V any](name string, ttl time.Duration, opts ...Option) (*Cache[V], error) {
	o := options{now: time.Now, metrics: observability.NewNoop()}
	for _, opt := range opts {
		opt(&o)
	}

	size := o.max
	if size <= 0 {
		size = unbounded
	}
	l, err := lru.New[string, entry[V]](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{
		name:    name,
		ttl:     ttl,
		max:     o.max,
		now:     o.now,
		metrics: o.metrics,
		lru:     l,
	}, nil
}

func (c *Cache[V]) Get(key string) (V, bool) {
	e, ok := c.lru.Peek(key)
	if !ok || c.expired(e) {
		c.metrics.IncCacheMiss(c.name)
		var zero V
		return zero, false
	}
	c.metrics.IncCacheHit(c.name)
	return e.value, true
}

func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, entry[V]{value: value, storedAt: c.now()})
}

// Sweep removes every entry whose age reached the ttl and reports how many went.
func (c *Cache[V]) Sweep() int {
	removed := 0
	for _, k := range c.lru.Keys() {
		if c.removeIfExpired(k) {
			removed++
		}
	}
	return removed
}

func (c *Cache[V]) removeIfExpired(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.lru.Peek(key)
	return ok && c.expired(e) && c.lru.Remove(key)
}

// Run sweeps on every tick until ctx is done.
func (c *Cache[V]) Run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.Sweep()
		}
	}
}

// Len counts stored entries, including expired ones not yet swept.
func (c *Cache[V]) Len() int {
	return c.lru.Len()
}

func (c *Cache[V]) expired(e entry[V]) bool {
	return c.now().Sub(e.storedAt) >= c.ttl
}

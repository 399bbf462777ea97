package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TemirB/address-lookup/internal/observability"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestGetRespectsTTL(t *testing.T) {
	tests := []struct {
		name    string
		advance time.Duration
		found   bool
	}{
		{name: "fresh", advance: 0, found: true},
		{name: "just before ttl", advance: 5*time.Minute - time.Second, found: true},
		{name: "exactly ttl", advance: 5 * time.Minute, found: false},
		{name: "after ttl", advance: 6 * time.Minute, found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newClock()
			c, err := New[string]("postcode", 5*time.Minute, WithClock(clock.Now))
			require.NoError(t, err)

			c.Put("SW1A1AA", "westminster")
			clock.Advance(tt.advance)

			v, ok := c.Get("SW1A1AA")
			require.Equal(t, tt.found, ok)
			if tt.found {
				require.Equal(t, "westminster", v)
			} else {
				require.Empty(t, v)
			}
		})
	}
}

func TestPutOverwritesAndRefreshes(t *testing.T) {
	clock := newClock()
	c, err := New[int]("places", 10*time.Minute, WithClock(clock.Now))
	require.NoError(t, err)

	c.Put("k", 1)
	clock.Advance(8 * time.Minute)
	c.Put("k", 2)
	clock.Advance(8 * time.Minute)

	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, c.Len())
}

func TestSweepRemovesExpired(t *testing.T) {
	clock := newClock()
	c, err := New[string]("postcode", time.Minute, WithClock(clock.Now))
	require.NoError(t, err)

	c.Put("old1", "a")
	c.Put("old2", "b")
	clock.Advance(45 * time.Second)
	c.Put("new", "c")
	clock.Advance(30 * time.Second)

	require.Equal(t, 2, c.Sweep())
	require.Equal(t, 1, c.Len())

	_, ok := c.Get("new")
	require.True(t, ok)
	require.Equal(t, 0, c.Sweep())
}

func TestCapacityEvictsOldestStored(t *testing.T) {
	clock := newClock()
	c, err := New[string]("postcode", time.Hour, WithClock(clock.Now), WithMaxEntries(2))
	require.NoError(t, err)

	c.Put("a", "1")
	clock.Advance(time.Second)
	c.Put("b", "2")
	clock.Advance(time.Second)

	// reading "a" must not protect it from eviction
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", "3")

	require.Equal(t, 2, c.Len())
	_, ok = c.Get("a")
	require.False(t, ok)
	_, ok = c.Get("b")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestUnboundedKeepsEverything(t *testing.T) {
	c, err := New[int]("places", time.Hour)
	require.NoError(t, err)

	for i := 0; i < 5000; i++ {
		c.Put(time.Duration(i).String(), i)
	}
	require.Equal(t, 5000, c.Len())
}

func TestHitMissMetrics(t *testing.T) {
	m := observability.NewInmem(10)
	c, err := New[string]("suggestions", time.Minute, WithMetrics(m))
	require.NoError(t, err)

	_, _ = c.Get("SW1")
	c.Put("SW1", "x")
	_, _ = c.Get("SW1")
	_, _ = c.Get("SW1")

	require.Equal(t, 2, m.CacheHits("suggestions"))
	require.Equal(t, 1, m.CacheMisses("suggestions"))
}

func TestRunStopsWithContext(t *testing.T) {
	c, err := New[string]("postcode", time.Nanosecond)
	require.NoError(t, err)
	c.Put("k", "v")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c, err := New[int]("postcode", time.Minute, WithMaxEntries(50))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := time.Duration(i*100 + j).String()
				c.Put(key, j)
				c.Get(key)
				if j%10 == 0 {
					c.Sweep()
				}
			}
		}(i)
	}
	wg.Wait()

	require.LessOrEqual(t, c.Len(), 50)
}

func TestSweepKeepsEntryRewrittenDuringCheck(t *testing.T) {
	clock := newClock()
	var (
		c     *Cache[string]
		armed atomic.Bool
		done  = make(chan struct{})
	)
	// the first clock read inside Sweep races a fresh Put for the same key
	now := func() time.Time {
		ts := clock.Now()
		if armed.CompareAndSwap(true, false) {
			go func() {
				c.Put("SW1A1AA", "fresh")
				close(done)
			}()
		}
		return ts
	}

	var err error
	c, err = New[string]("postcode", time.Minute, WithClock(now))
	require.NoError(t, err)

	c.Put("SW1A1AA", "stale")
	clock.Advance(time.Minute)
	armed.Store(true)

	require.Equal(t, 1, c.Sweep())
	<-done

	v, ok := c.Get("SW1A1AA")
	require.True(t, ok)
	require.Equal(t, "fresh", v)
}

package observability

import "sync"

type observe struct {
	Kind   string
	Name   string
	Method string
	Route  string
	Status int
	OK     bool
	Dur    float64
}

// Inmem keeps the last max observations and per-cache hit/miss totals.
// It backs tests and local runs without a Prometheus scraper.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals struct {
		cacheHits, cacheMiss map[string]int
		rateLimited          map[string]int
	}
}

func NewInmem(max int) *Inmem {
	m := &Inmem{
		max: max,
	}
	m.totals.cacheHits = make(map[string]int)
	m.totals.cacheMiss = make(map[string]int)
	m.totals.rateLimited = make(map[string]int)
	return m
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveLookup(source string, resolveMs, placesMs, dbMs float64) {
	m.push(&observe{Kind: "lookup", Name: source, Dur: resolveMs + placesMs + dbMs})
}

func (m *Inmem) ObserveUpstream(name string, ok bool, durMs float64) {
	m.push(&observe{Kind: "upstream", Name: name, OK: ok, Dur: durMs})
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.push(&observe{Kind: "http", Method: method, Route: route, Status: status, Dur: durMs})
}

func (m *Inmem) ObserveUsage(ok bool) {
	m.push(&observe{Kind: "usage", OK: ok})
}

func (m *Inmem) IncCacheHit(cache string) {
	m.mu.Lock()
	m.totals.cacheHits[cache]++
	m.mu.Unlock()
}

func (m *Inmem) IncCacheMiss(cache string) {
	m.mu.Lock()
	m.totals.cacheMiss[cache]++
	m.mu.Unlock()
}

func (m *Inmem) IncRateLimited(kind string) {
	m.mu.Lock()
	m.totals.rateLimited[kind]++
	m.mu.Unlock()
}

func (m *Inmem) CacheHits(cache string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheHits[cache]
}

func (m *Inmem) CacheMisses(cache string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.cacheMiss[cache]
}

func (m *Inmem) RateLimited(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totals.rateLimited[kind]
}

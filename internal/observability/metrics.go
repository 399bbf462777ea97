package observability

// Metrics is the sink for lookup, upstream, cache and HTTP observations.
type Metrics interface {
	ObserveLookup(source string, resolveMs, placesMs, dbMs float64)
	ObserveUpstream(name string, ok bool, durMs float64)
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveUsage(ok bool)
	IncCacheHit(cache string)
	IncCacheMiss(cache string)
	IncRateLimited(kind string)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveLookup(string, float64, float64, float64) {}
func (Noop) ObserveUpstream(string, bool, float64)           {}
func (Noop) ObserveHTTP(string, string, int, float64)        {}
func (Noop) ObserveUsage(bool)                               {}
func (Noop) IncCacheHit(string)                              {}
func (Noop) IncCacheMiss(string)                             {}
func (Noop) IncRateLimited(string)                           {}

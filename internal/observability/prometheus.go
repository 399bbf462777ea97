package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "address_lookup"

// Prometheus implements Metrics on top of client_golang collectors.
type Prometheus struct {
	lookups     *prometheus.HistogramVec
	upstream    *prometheus.HistogramVec
	httpReqs    *prometheus.HistogramVec
	usage       *prometheus.CounterVec
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
	rateLimited *prometheus.CounterVec
}

// NewPrometheus registers the collectors on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	f := promauto.With(reg)
	return &Prometheus{
		lookups: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "lookup",
			Name:      "duration_ms",
			Help:      "Postcode lookup time split by where geography came from.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"source"}),
		upstream: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "duration_ms",
			Help:      "Upstream call latency by upstream and outcome.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"upstream", "ok"}),
		httpReqs: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_ms",
			Help:      "HTTP request latency.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		}, []string{"method", "route", "status"}),
		usage: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "usage",
			Name:      "records_total",
			Help:      "Usage records written, by outcome.",
		}, []string{"ok"}),
		cacheHits: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Cache hits by cache name.",
		}, []string{"cache"}),
		cacheMisses: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Cache misses by cache name.",
		}, []string{"cache"}),
		rateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "access",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by identity kind.",
		}, []string{"kind"}),
	}
}

func (p *Prometheus) ObserveLookup(source string, resolveMs, placesMs, dbMs float64) {
	p.lookups.WithLabelValues(source).Observe(resolveMs + placesMs + dbMs)
}

func (p *Prometheus) ObserveUpstream(name string, ok bool, durMs float64) {
	p.upstream.WithLabelValues(name, strconv.FormatBool(ok)).Observe(durMs)
}

func (p *Prometheus) ObserveHTTP(method, route string, status int, durMs float64) {
	p.httpReqs.WithLabelValues(method, route, strconv.Itoa(status)).Observe(durMs)
}

func (p *Prometheus) ObserveUsage(ok bool) {
	p.usage.WithLabelValues(strconv.FormatBool(ok)).Inc()
}

func (p *Prometheus) IncCacheHit(cache string)  { p.cacheHits.WithLabelValues(cache).Inc() }
func (p *Prometheus) IncCacheMiss(cache string) { p.cacheMisses.WithLabelValues(cache).Inc() }

func (p *Prometheus) IncRateLimited(kind string) { p.rateLimited.WithLabelValues(kind).Inc() }

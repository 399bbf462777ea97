// Package places talks to a Google Places Nearby Search compatible API.
package places

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/TemirB/address-lookup/internal/config"
	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/upstream"
)

const name = "places"

// Place is one nearby-search hit.
type Place struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]Place]
	limiter    *rate.Limiter
	metrics    observability.Metrics
	log        *zap.Logger
}

func New(cfg config.Upstream, br config.Breaker, m observability.Metrics, log *zap.Logger) *Client {
	if m == nil {
		m = observability.NewNoop()
	}
	if log == nil {
		log = zap.NewNop()
	}

	limit := rate.Inf
	burst := 1
	if cfg.PlacesMaxQPS > 0 {
		limit = rate.Limit(cfg.PlacesMaxQPS)
		burst = int(cfg.PlacesMaxQPS)
		if burst < 1 {
			burst = 1
		}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.PlacesBaseURL, "/"),
		apiKey:     cfg.PlacesAPIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    m,
		log:        log,
	}
	c.breaker = gobreaker.NewCircuitBreaker[[]Place](gobreaker.Settings{
		Name:        name,
		MaxRequests: br.MaxHalfOpen,
		Timeout:     br.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= br.Threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool { return c.apiKey != "" }

type response struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Results      []Place `json:"results"`
}

// Nearby returns at most limit places within radiusMeters of the point.
// Calls fail fast while the breaker is open or the outbound quota is spent.
func (c *Client) Nearby(ctx context.Context, lat, lng float64, radiusMeters, limit int) ([]Place, error) {
	if !c.Configured() {
		return nil, upstream.ErrNotConfigured
	}
	if !c.limiter.Allow() {
		return nil, upstream.ErrQuotaExceeded
	}

	res, err := c.breaker.Execute(func() ([]Place, error) {
		return c.nearby(ctx, lat, lng, radiusMeters)
	})
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(res) > limit {
		res = res[:limit]
	}
	return res, nil
}

func (c *Client) nearby(ctx context.Context, lat, lng float64, radiusMeters int) (_ []Place, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveUpstream(name, err == nil, float64(time.Since(start).Microseconds())/1000)
	}()

	q := url.Values{}
	q.Set("location", strconv.FormatFloat(lat, 'f', -1, 64)+","+strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radiusMeters))
	q.Set("key", c.apiKey)
	u := c.baseURL + "/nearbysearch/json?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &upstream.StatusError{Upstream: name, Code: resp.StatusCode}
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", name, err)
	}
	switch out.Status {
	case "OK", "ZERO_RESULTS":
		return out.Results, nil
	default:
		return nil, fmt.Errorf("%s api status %s: %s", name, out.Status, out.ErrorMessage)
	}
}

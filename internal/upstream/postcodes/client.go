// Package postcodes talks to a postcodes.io compatible geography resolver.
package postcodes

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/upstream"
)

const name = "postcodes"

// Geography is what the resolver knows about a full postcode.
type Geography struct {
	Postcode      string  `json:"postcode"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AdminDistrict string  `json:"admin_district"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    observability.Metrics
}

func New(baseURL string, timeout time.Duration, m observability.Metrics) *Client {
	if m == nil {
		m = observability.NewNoop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

type envelope[T any] struct {
	Status int    `json:"status"`
	Error  string `json:"error"`
	Result T      `json:"result"`
}

// Resolve returns the geography for a full postcode. A non-200 reply is
// returned as *upstream.StatusError carrying the resolver's code.
func (c *Client) Resolve(ctx context.Context, postcode string) (Geography, error) {
	u := fmt.Sprintf("%s/postcodes/%s", c.baseURL, url.PathEscape(postcode))

	var out envelope[*Geography]
	if err := c.get(ctx, u, &out); err != nil {
		return Geography{}, err
	}
	if out.Result == nil {
		return Geography{}, &upstream.StatusError{Upstream: name, Code: http.StatusNotFound, Message: "empty result"}
	}
	return *out.Result, nil
}

// Autocomplete returns at most limit full postcodes starting with partial.
func (c *Client) Autocomplete(ctx context.Context, partial string, limit int) ([]string, error) {
	u := fmt.Sprintf("%s/postcodes/%s/autocomplete?limit=%s",
		c.baseURL, url.PathEscape(partial), strconv.Itoa(limit))

	var out envelope[[]string]
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	if limit > 0 && len(out.Result) > limit {
		out.Result = out.Result[:limit]
	}
	return out.Result, nil
}

func (c *Client) get(ctx context.Context, u string, dst any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveUpstream(name, err == nil, float64(time.Since(start).Microseconds())/1000)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body envelope[json.RawMessage]
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return &upstream.StatusError{Upstream: name, Code: resp.StatusCode, Message: body.Error}
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s decode: %w", name, err)
	}
	return nil
}

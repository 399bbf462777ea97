// Package access authenticates requests, enforces origin allow-lists and
// applies per-identity rate limits.
package access

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/config"
	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/observability"
)

const (
	msgKeyRequired  = "API key is required"
	msgUnauthorized = "Unauthorized"
	msgInternal     = "Internal server error"
	msgDomain       = "Domain not authorized"
	msgTooMany      = "Too many requests"
)

type IdentityFinder interface {
	FindByAPIKey(ctx context.Context, key string) (*domain.Identity, error)
}

type ctxKey struct{}

// IdentityFrom returns the identity resolved for the request, or nil.
func IdentityFrom(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(ctxKey{}).(*domain.Identity)
	return id
}

func WithIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

type Access struct {
	identities   IdentityFinder
	demoKey      string
	demoLimit    int
	defaultLimit int
	limiter      *httprate.RateLimiter
	logger       *zap.Logger
	metrics      observability.Metrics
}

func New(cfg config.Access, identities IdentityFinder, logger *zap.Logger, metrics observability.Metrics) *Access {
	a := &Access{
		identities:   identities,
		demoKey:      cfg.DemoKey,
		demoLimit:    cfg.DemoLimit,
		defaultLimit: cfg.DefaultRateLimit,
		logger:       logger,
		metrics:      metrics,
	}
	a.limiter = httprate.NewRateLimiter(cfg.DemoLimit, cfg.Window,
		httprate.WithKeyFuncs(limitKey),
		httprate.WithLimitHandler(a.limited),
	)
	return a
}

// Middleware resolves the identity, checks the origin against its allow-list
// and rate limits the request before calling next.
func (a *Access) Middleware(next http.Handler) http.Handler {
	limited := a.limiter.Handler(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r.Header.Get("Authorization"))
		if token == "" {
			writeError(w, http.StatusUnauthorized, msgKeyRequired)
			return
		}

		id, status, msg := a.resolve(r.Context(), token)
		if id == nil {
			writeError(w, status, msg)
			return
		}

		if !allowedOrigin(id, r) {
			a.logger.Warn("Origin not in allow-list",
				zap.String("identity", id.ID),
				zap.String("origin", r.Header.Get("Origin")),
				zap.String("referer", r.Header.Get("Referer")),
			)
			writeError(w, http.StatusForbidden, msgDomain)
			return
		}

		limit := a.demoLimit
		if !id.IsDemo() {
			limit = id.RateLimit
			if limit <= 0 {
				limit = a.defaultLimit
			}
		}
		ctx := WithIdentity(r.Context(), id)
		ctx = httprate.WithRequestLimit(ctx, limit)
		limited.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Access) resolve(ctx context.Context, token string) (*domain.Identity, int, string) {
	if a.demoKey != "" && token == a.demoKey {
		return domain.DemoIdentity(), 0, ""
	}

	id, err := a.identities.FindByAPIKey(ctx, token)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, http.StatusUnauthorized, msgUnauthorized
	case err != nil:
		a.logger.Error("Identity lookup failed", zap.Error(err))
		return nil, http.StatusInternalServerError, msgInternal
	case id == nil:
		return nil, http.StatusUnauthorized, msgUnauthorized
	}
	id.Kind = domain.KindAPIKey
	return id, 0, ""
}

func (a *Access) limited(w http.ResponseWriter, r *http.Request) {
	kind := string(domain.KindDemo)
	if id := IdentityFrom(r.Context()); id != nil {
		kind = string(id.Kind)
	}
	a.metrics.IncRateLimited(kind)
	if w.Header().Get("Retry-After") == "" {
		w.Header().Set("Retry-After", "60")
	}
	writeError(w, http.StatusTooManyRequests, msgTooMany)
}

// limitKey buckets demo traffic by client address and keyed traffic by identity.
func limitKey(r *http.Request) (string, error) {
	id := IdentityFrom(r.Context())
	if id == nil || id.IsDemo() {
		ip, err := httprate.KeyByIP(r)
		return "demo:" + ip, err
	}
	return "key:" + id.ID, nil
}

func bearerToken(h string) string {
	h = strings.TrimSpace(h)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	if strings.EqualFold(h, "bearer") {
		return ""
	}
	return h
}

func allowedOrigin(id *domain.Identity, r *http.Request) bool {
	if len(id.AllowedDomains) == 0 {
		return true
	}
	raw := r.Header.Get("Origin")
	if raw == "" {
		raw = r.Header.Get("Referer")
	}
	if raw == "" {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return false
	}
	return id.AllowsHost(u.Hostname())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	b, _ := json.Marshal(map[string]string{"error": msg})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/observability"
)

// Instrument reports every request to Metrics.ObserveHTTP under its route
// pattern and logs it at debug level.
func Instrument(m observability.Metrics, log *zap.Logger) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := float64(time.Since(start).Microseconds()) / 1000.0

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.ObserveHTTP(r.Method, route, ww.Status(), dur)
			log.Debug("request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Float64("dur_ms", dur),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

// Preflight answers every OPTIONS request with 204 before auth or rate limiting run.
func Preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverTo turns a panic into a 500 carrying body. It must be deferred directly.
func (s *Server) recoverTo(w http.ResponseWriter, r *http.Request, body any) {
	rec := recover()
	if rec == nil {
		return
	}
	if rec == http.ErrAbortHandler {
		panic(rec)
	}
	s.logger.Error("Handler panic",
		zap.Any("panic", rec),
		zap.String("path", r.URL.Path),
		zap.Stack("stack"),
	)
	writeJSON(w, http.StatusInternalServerError, body)
}

package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/application/service"
	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/observability"
)

//go:generate mockgen -source internal/httpapi/httpapi.go -destination=internal/httpapi/httpapi_mock_test.go -package=httpapi

type Lookup interface {
	LookupPostcode(ctx context.Context, raw string) ([]domain.AddressSummary, service.LookupStats, error)
	Suggest(ctx context.Context, partial string) []domain.Suggestion
	SubmitResidential(ctx context.Context, in service.ResidentialInput, submittedBy string) (*domain.ResidentialAddress, error)
}

type UsageRecorder interface {
	Record(id *domain.Identity, endpoint string, status domain.UsageStatus)
}

type Sizer interface {
	Len() int
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type QueueDepth interface {
	Pending() int
}

type CacheSizes struct {
	Postcode    Sizer
	Places      Sizer
	Suggestions Sizer
}

type Deps struct {
	Lookup           Lookup
	Users            domain.IdentityRepository
	Usage            UsageRecorder
	Auth             func(http.Handler) http.Handler
	Caches           CacheSizes
	DefaultRateLimit int
	// DB and UsageQueue are reported by /health when set.
	DB         Pinger
	UsageQueue QueueDepth
	// TrustProxy takes the client address from forwarding headers.
	TrustProxy bool
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
}

type Server struct {
	deps     Deps
	router   chi.Router
	validate *validator.Validate
	now      func() time.Time
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(deps Deps, logger *zap.Logger, metrics observability.Metrics) *Server {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	s := &Server{
		deps:     deps,
		router:   chi.NewRouter(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		logger:   logger,
		metrics:  metrics,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	if s.deps.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.Recoverer)
	r.Use(Instrument(s.metrics, s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		MaxAge:             86400,
		OptionsPassthrough: true,
	}))
	r.Use(Preflight)

	r.Get("/health", s.health)
	if s.deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.deps.MetricsHandler)
	}

	r.Post("/generate-key", s.generateKey)
	r.Route("/users", func(r chi.Router) {
		r.Get("/", s.listUsers)
		r.Put("/{id}", s.updateUser)
		r.Delete("/{id}", s.deleteUser)
	})

	r.Group(func(r chi.Router) {
		if s.deps.Auth != nil {
			r.Use(s.deps.Auth)
		}
		r.Get("/postcodes/{postcode}", s.lookupPostcode)
		r.Get("/suggestions/{partial}", s.suggest)
		r.Post("/residential-address", s.submitResidential)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		errCh <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("HTTP server listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-errCh
}

func (s *Server) Handler() http.Handler { return s.router }

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/TemirB/address-lookup/internal/access"
	"github.com/TemirB/address-lookup/internal/application/service"
	"github.com/TemirB/address-lookup/internal/cache"
	"github.com/TemirB/address-lookup/internal/config"
	"github.com/TemirB/address-lookup/internal/database"
	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/httpapi"
	"github.com/TemirB/address-lookup/internal/kafka"
	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/upstream/places"
	"github.com/TemirB/address-lookup/internal/upstream/postcodes"
	"github.com/TemirB/address-lookup/internal/usage"
)

const inmemObservations = 1024

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("address-lookup stopped with error", zap.Error(err))
	}
	logger.Info("address-lookup stopped")
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	metrics, metricsHandler := newMetrics(cfg, logger)

	// Database
	pool, err := database.Connect(ctx, cfg.DSN(), logger)
	if err != nil {
		return err
	}
	defer pool.Close()
	repo := database.New(pool, database.DefaultTables(cfg.Pg.Schema))
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	// Caches
	geoCache, err := cache.New[postcodes.Geography]("postcode", cfg.Cache.PostcodeTTL,
		cache.WithMaxEntries(cfg.Cache.PostcodeCap), cache.WithMetrics(metrics))
	if err != nil {
		return err
	}
	placesCache, err := cache.New[[]domain.AddressSummary]("places", cfg.Cache.PlacesTTL,
		cache.WithMetrics(metrics))
	if err != nil {
		return err
	}
	suggestCache, err := cache.New[[]domain.Suggestion]("suggestions", cfg.Cache.PostcodeTTL,
		cache.WithMaxEntries(cfg.Cache.PostcodeCap), cache.WithMetrics(metrics))
	if err != nil {
		return err
	}
	go geoCache.Run(ctx, cfg.Cache.SweepInterval)
	go placesCache.Run(ctx, cfg.Cache.SweepInterval)
	go suggestCache.Run(ctx, cfg.Cache.SweepInterval)

	// Upstreams
	resolver := postcodes.New(cfg.Upstream.PostcodesBaseURL, cfg.Upstream.Timeout, metrics)
	placesClient := places.New(cfg.Upstream, cfg.Breaker, metrics, logger)
	if !placesClient.Configured() {
		logger.Warn("PLACES_API_KEY is not set, lookups will carry residential results only")
	}

	// Usage
	sinks := []usage.Sink{usage.StoreSink{Repo: repo}}
	if len(cfg.Kafka.Brokers) > 0 {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka.Brokers, kafka.TopicSpec{Name: cfg.Kafka.UsageTopic}, logger); err != nil {
			logger.Warn("Can't ensure usage topic", zap.String("topic", cfg.Kafka.UsageTopic), zap.Error(err))
		}
		pub := kafka.NewUsagePublisher(cfg.Kafka.Brokers, cfg.Kafka.UsageTopic)
		defer func() { _ = pub.Close() }()
		sinks = append(sinks, pub)
	}
	usageLog := usage.New(cfg.Usage, cfg.Retry, logger, metrics, sinks...)
	defer usageLog.Close()

	// Service
	limits := service.DefaultLimits()
	limits.PlacesRadius = cfg.Upstream.PlacesRadius
	limits.PlacesLimit = cfg.Upstream.PlacesLimit
	svc := service.NewService(
		service.Caches{Geography: geoCache, Places: placesCache, Suggestions: suggestCache},
		resolver, placesClient, repo, limits, logger, metrics,
	)

	// HTTP
	auth := access.New(cfg.Access, repo, logger, metrics)
	server := httpapi.New(httpapi.Deps{
		Lookup:           svc,
		Users:            repo,
		Usage:            usageLog,
		Auth:             auth.Middleware,
		Caches:           httpapi.CacheSizes{Postcode: geoCache, Places: placesCache, Suggestions: suggestCache},
		DefaultRateLimit: cfg.Access.DefaultRateLimit,
		MetricsHandler:   metricsHandler,
		DB:               repo,
		UsageQueue:       usageLog,
		TrustProxy:       cfg.Access.TrustProxy,
	}, logger, metrics)

	return server.ListenAndServe(ctx, cfg.HTTPAddr)
}

// newMetrics returns Prometheus collectors and their handler, or an in-memory
// ring with no handler when METRICS_ENABLED is off.
func newMetrics(cfg config.Config, logger *zap.Logger) (observability.Metrics, http.Handler) {
	if !cfg.MetricsEnabled {
		logger.Info("Prometheus disabled, keeping metrics in memory")
		return observability.NewInmem(inmemObservations), nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return observability.NewPrometheus(reg), promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.AppEnv == "dev" || strings.EqualFold(cfg.LogLevel, "debug") {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
	return zc.Build()
}

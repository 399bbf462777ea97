// Package usage records per-identity endpoint usage in the background.
package usage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TemirB/address-lookup/internal/config"
	"github.com/TemirB/address-lookup/internal/domain"
	"github.com/TemirB/address-lookup/internal/observability"
	"github.com/TemirB/address-lookup/internal/pkg/pool"
	"github.com/TemirB/address-lookup/internal/pkg/retry"
)

const writeTimeout = 5 * time.Second

// Sink is a destination for usage records.
type Sink interface {
	Name() string
	Write(ctx context.Context, rec domain.UsageRecord) error
}

// StoreSink writes records to the relational usage table.
type StoreSink struct {
	Repo domain.UsageRepository
}

func (s StoreSink) Name() string { return "postgres" }

// Write stores rec. A duplicate id is not retried.
func (s StoreSink) Write(ctx context.Context, rec domain.UsageRecord) error {
	err := s.Repo.InsertUsage(ctx, rec)
	if errors.Is(err, domain.ErrConflict) {
		return retry.Permanent(err)
	}
	return err
}

// Logger queues usage records and fans each one out to every sink.
// Record never blocks the caller; a full queue drops the record.
type Logger struct {
	pool    *pool.Pool
	sinks   []Sink
	retry   config.Retry
	now     func() time.Time
	logger  *zap.Logger
	metrics observability.Metrics
}

func New(cfg config.Usage, policy config.Retry, logger *zap.Logger, metrics observability.Metrics, sinks ...Sink) *Logger {
	return &Logger{
		pool:    pool.New(cfg.Workers, cfg.Queue),
		sinks:   sinks,
		retry:   policy,
		now:     time.Now,
		logger:  logger,
		metrics: metrics,
	}
}

// Record enqueues one usage record for id. Demo identities are skipped.
func (l *Logger) Record(id *domain.Identity, endpoint string, status domain.UsageStatus) {
	if id.IsDemo() {
		return
	}
	rec := domain.UsageRecord{
		ID:         uuid.NewString(),
		IdentityID: id.ID,
		Endpoint:   endpoint,
		Status:     status,
		Timestamp:  l.now().UTC(),
	}
	if !l.pool.TrySubmit(func() { l.write(rec) }) {
		l.metrics.ObserveUsage(false)
		l.logger.Warn("Usage queue full, record dropped",
			zap.String("identity", rec.IdentityID),
			zap.String("endpoint", rec.Endpoint),
		)
	}
}

func (l *Logger) write(rec domain.UsageRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	var errs []error
	for _, s := range l.sinks {
		err := retry.Do(ctx, l.retry, func(ctx context.Context) error {
			return s.Write(ctx, rec)
		})
		if err != nil {
			l.logger.Error("Usage write failed",
				zap.String("sink", s.Name()),
				zap.String("identity", rec.IdentityID),
				zap.String("endpoint", rec.Endpoint),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	l.metrics.ObserveUsage(errors.Join(errs...) == nil)
}

// Pending reports records queued but not yet picked up by a worker.
func (l *Logger) Pending() int { return l.pool.Pending() }

// Close stops accepting records and waits for queued writes.
func (l *Logger) Close() {
	l.pool.Close()
}

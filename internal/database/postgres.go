package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

type Tables struct {
	Schema      string
	Users       string
	RateLimits  string
	Residential string
	Usage       string
}

func DefaultTables(schema string) Tables {
	if schema == "" {
		schema = "public"
	}
	return Tables{
		Schema:      schema,
		Users:       "users",
		RateLimits:  "rate_limits",
		Residential: "residential_addresses",
		Usage:       "api_usage",
	}
}

type Repo struct {
	pool   *pgxpool.Pool
	tables Tables
}

func New(pool *pgxpool.Pool, t Tables) *Repo { return &Repo{pool: pool, tables: t} }

// Connect opens a pool with queries traced onto log and pings it.
func Connect(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(log),
		LogLevel: tracelog.LogLevelWarn,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// EnsureSchema creates the tables this service reads and writes when absent.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, r.schema())
	return err
}

func (r *Repo) Ping(ctx context.Context) error { return r.pool.Ping(ctx) }

func (r *Repo) schema() string {
	return strings.NewReplacer(
		"{{schema}}", quoteIdent(r.tables.Schema),
		"{{users}}", r.qt(r.tables.Users),
		"{{rate_limits}}", r.qt(r.tables.RateLimits),
		"{{residential}}", r.qt(r.tables.Residential),
		"{{usage}}", r.qt(r.tables.Usage),
	).Replace(schemaSQL)
}

func (r *Repo) qt(tbl string) string {
	return quoteIdent(r.tables.Schema) + "." + quoteIdent(tbl)
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// escapeLike makes s match literally inside a LIKE pattern using '\' as escape.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

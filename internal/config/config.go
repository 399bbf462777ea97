package config

import (
	"log"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Postgres struct {
	URL      string `env:"DATABASE_URL"`
	Host     string `env:"PG_HOST"`
	Port     string `env:"PG_PORT" envDefault:"5432"`
	DB       string `env:"PG_DB"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	SSLMode  string `env:"PG_SSLMODE" envDefault:"disable"`
	Schema   string `env:"DB_SCHEMA" envDefault:"public"`
}

type Upstream struct {
	PostcodesBaseURL string        `env:"POSTCODES_BASE_URL" envDefault:"https://api.postcodes.io"`
	PlacesBaseURL    string        `env:"PLACES_BASE_URL" envDefault:"https://maps.googleapis.com/maps/api/place"`
	PlacesAPIKey     string        `env:"PLACES_API_KEY"`
	PlacesRadius     int           `env:"PLACES_RADIUS_METERS" envDefault:"250"`
	PlacesLimit      int           `env:"PLACES_LIMIT" envDefault:"12"`
	PlacesMaxQPS     float64       `env:"PLACES_MAX_QPS" envDefault:"10"`
	Timeout          time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`
}

type Cache struct {
	PostcodeTTL   time.Duration `env:"POSTCODE_CACHE_TTL" envDefault:"5m"`
	PlacesTTL     time.Duration `env:"PLACES_CACHE_TTL" envDefault:"10m"`
	PostcodeCap   int           `env:"POSTCODE_CACHE_CAP" envDefault:"1000"`
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"60s"`
}

type Access struct {
	DemoKey          string        `env:"DEMO_API_KEY" envDefault:"demo"`
	DemoLimit        int           `env:"DEMO_RATE_LIMIT" envDefault:"5"`
	Window           time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"15m"`
	DefaultRateLimit int           `env:"DEFAULT_RATE_LIMIT" envDefault:"100"`
	// TrustProxy honours X-Forwarded-For and friends as the client address.
	// Enable only behind a proxy that overwrites them.
	TrustProxy bool `env:"TRUST_PROXY" envDefault:"false"`
}

type Usage struct {
	Workers int `env:"USAGE_WORKERS" envDefault:"2"`
	Queue   int `env:"USAGE_QUEUE" envDefault:"256"`
}

type Breaker struct {
	Threshold   uint32        `env:"BREAKER_THRESHOLD" envDefault:"5"`
	OpenTimeout time.Duration `env:"BREAKER_OPENTIMEOUT" envDefault:"30s"`
	MaxHalfOpen uint32        `env:"BREAKER_MAXHALFOPEN" envDefault:"1"`
}

type Retry struct {
	Attempts     int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	Base         time.Duration `env:"RETRY_BASE" envDefault:"100ms"`
	Max          time.Duration `env:"RETRY_MAX" envDefault:"2s"`
	JitterFactor float64       `env:"RETRY_JITTERFACTOR" envDefault:"0.3"`
}

type Kafka struct {
	Brokers    []string `env:"KAFKA_BROKERS" envSeparator:","`
	UsageTopic string   `env:"KAFKA_USAGE_TOPIC" envDefault:"address-lookup.usage"`
}

type Config struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8081"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv   string `env:"APP_ENV" envDefault:"prod"`
	// MetricsEnabled exposes Prometheus on /metrics; otherwise an in-memory ring is used.
	MetricsEnabled bool `env:"METRICS_ENABLED" envDefault:"true"`

	Pg       Postgres
	Upstream Upstream
	Cache    Cache
	Access   Access
	Usage    Usage
	Breaker  Breaker
	Retry    Retry
	Kafka    Kafka
}

// Load keeps the original API and fatals on error for simplicity in main().
func Load() Config {
	cfg, err := load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	return cfg
}

func load() (Config, error) {
	_ = godotenv.Load("env/.env")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Kafka.Brokers = trimAll(cfg.Kafka.Brokers)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Pg.URL) != "" {
		return nil
	}

	var missing []string
	req := []struct{ key, val string }{
		{"PG_HOST", c.Pg.Host},
		{"PG_DB", c.Pg.DB},
		{"PG_USER", c.Pg.User},
		{"PG_PASSWORD", c.Pg.Password},
	}
	for _, r := range req {
		if strings.TrimSpace(r.val) == "" {
			missing = append(missing, r.key)
		}
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}
	return nil
}

// normalize clamps values that would otherwise break the components they feed.
func (c *Config) normalize() {
	if c.Cache.PostcodeCap < 0 {
		log.Printf("POSTCODE_CACHE_CAP is %d, adjusting to 0 (unbounded)", c.Cache.PostcodeCap)
		c.Cache.PostcodeCap = 0
	}
	if c.Cache.SweepInterval <= 0 {
		log.Printf("CACHE_SWEEP_INTERVAL is %v, adjusting to 60s", c.Cache.SweepInterval)
		c.Cache.SweepInterval = time.Minute
	}
	if c.Access.DemoLimit < 1 {
		log.Printf("DEMO_RATE_LIMIT is %d, adjusting to 1", c.Access.DemoLimit)
		c.Access.DemoLimit = 1
	}
	if c.Access.DefaultRateLimit < 1 {
		log.Printf("DEFAULT_RATE_LIMIT is %d, adjusting to 1", c.Access.DefaultRateLimit)
		c.Access.DefaultRateLimit = 1
	}
	if c.Usage.Workers < 1 {
		log.Printf("USAGE_WORKERS is %d, adjusting to 1", c.Usage.Workers)
		c.Usage.Workers = 1
	}
	if c.Retry.Attempts < 1 {
		log.Printf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts)
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		log.Printf("RETRY_BASE is %v, adjusting to 100ms", c.Retry.Base)
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		log.Printf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base)
		c.Retry.Max = c.Retry.Base
	}
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

// DSN returns DATABASE_URL when set, otherwise builds a proper Postgres URL,
// safely escaping user/pass and query.
func (c Config) DSN() string {
	if c.Pg.URL != "" {
		return c.Pg.URL
	}
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.Pg.User, c.Pg.Password),
		Host:   net.JoinHostPort(c.Pg.Host, c.Pg.Port),
		Path:   "/" + c.Pg.DB,
	}
	q := url.Values{}
	if c.Pg.SSLMode != "" {
		q.Set("sslmode", c.Pg.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

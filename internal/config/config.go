package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"-"`

	Host                  string `toml:"host"`
	Port                  int    `toml:"port"`
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// aggregation
	DayBoundaryTimezone string `toml:"day_boundary_timezone"`

	// targets cache, write limits, identity
	TargetsCacheSizeMB     int  `toml:"targets_cache_size_mb"`
	TargetsCacheTTLSeconds int  `toml:"targets_cache_ttl_seconds"`
	WriteRateLimitPerMin   int  `toml:"write_rate_limit_per_min"`
	AllowUserIDHeader      bool `toml:"allow_user_id_header"`

	// progress photos
	S3Bucket        string `toml:"s3_bucket"`
	S3Region        string `toml:"s3_region"`
	S3PublicBaseURL string `toml:"s3_public_base_url"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

// Secrets are never kept in the TOML file, they are read from the environment.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	JWTSecret        string `env:"FITME_JWT_SECRET"`
	RedisPassword    string `env:"FITME_REDIS_PASS"`
	PostgresPassword string `env:"FITME_DB_PASS"`
	MCPSecretHash    string `env:"FITME_MCP_SECRET_HASH"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=fitme-backend"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

// Load reads the TOML file on path and returns the config for the given environment,
// with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an already read config file content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DayBoundaryTimezone == "" {
		c.DayBoundaryTimezone = "UTC"
	}
	if c.TargetsCacheSizeMB == 0 {
		c.TargetsCacheSizeMB = 8
	}
	if c.TargetsCacheTTLSeconds == 0 {
		c.TargetsCacheTTLSeconds = 300
	}
	if c.WriteRateLimitPerMin == 0 {
		c.WriteRateLimitPerMin = 120
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if _, err := time.LoadLocation(c.DayBoundaryTimezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid day_boundary_timezone [%s]: %w", c.DayBoundaryTimezone, err))
	}
	if c.TargetsCacheSizeMB < 0 || c.TargetsCacheTTLSeconds < 0 || c.WriteRateLimitPerMin < 0 {
		errs = append(errs, errors.New("cache size, cache ttl and rate limit must not be negative"))
	}
	if (c.S3Bucket == "") != (c.S3Region == "") {
		errs = append(errs, errors.New("s3_bucket and s3_region must be set together"))
	}
	return errors.Join(errs...)
}

// DayBoundaryLocation is the timezone in which calendar days are cut.
func (c *Config) DayBoundaryLocation() *time.Location {
	loc, err := time.LoadLocation(c.DayBoundaryTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) TargetsCacheTTL() time.Duration {
	return time.Duration(c.TargetsCacheTTLSeconds) * time.Second
}

func (c *Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != ""
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

// LoadSecretsFrom is LoadSecrets with an explicit env source, used in tests.
func LoadSecretsFrom(ctx context.Context, env map[string]string) (*Secrets, error) {
	var s Secrets
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &s,
		Lookuper: envconfig.MapLookuper(env),
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}
	return &s, nil
}

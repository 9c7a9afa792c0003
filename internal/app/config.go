package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yungbote/gigifypro-backend/internal/data/db"
	"github.com/yungbote/gigifypro-backend/internal/observability"
)

const (
	envPrefix     = "GIGIFY_"
	envConfigFile = "GIGIFY_CONFIG"
)

type Config struct {
	LogMode string `koanf:"log_mode"`
	Addr    string `koanf:"addr"`

	DBDriver         string `koanf:"db_driver"`
	PostgresHost     string `koanf:"postgres_host"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresUser     string `koanf:"postgres_user"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresName     string `koanf:"postgres_name"`
	PostgresSSLMode  string `koanf:"postgres_sslmode"`
	SQLitePath       string `koanf:"sqlite_path"`
	DBMaxOpenConns   int    `koanf:"db_max_open_conns"`
	DBMaxIdleConns   int    `koanf:"db_max_idle_conns"`

	JWTSecretKey          string `koanf:"jwt_secret_key"`
	AccessTokenTTLSeconds int    `koanf:"access_token_ttl_seconds"`

	RedisAddr    string `koanf:"redis_addr"`
	RedisChannel string `koanf:"redis_channel"`

	OtelEnabled     bool    `koanf:"otel_enabled"`
	OtelEndpoint    string  `koanf:"otel_endpoint"`
	OtelInsecure    bool    `koanf:"otel_insecure"`
	OtelSampleRatio float64 `koanf:"otel_sample_ratio"`
	ServiceName     string  `koanf:"service_name"`
	Environment     string  `koanf:"environment"`
	Version         string  `koanf:"version"`

	MetricsNamespace string `koanf:"metrics_namespace"`

	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitPerMinute applies per caller on authenticated routes; 0 disables.
	RateLimitPerMinute int `koanf:"rate_limit_per_minute"`
	RateLimitBurst     int `koanf:"rate_limit_burst"`

	RecomputeConcurrency   int `koanf:"recompute_concurrency"`
	ShutdownTimeoutSeconds int `koanf:"shutdown_timeout_seconds"`
}

func DefaultConfig() Config {
	return Config{
		LogMode:                "development",
		Addr:                   ":8080",
		DBDriver:               db.DriverPostgres,
		PostgresHost:           "localhost",
		PostgresPort:           "5432",
		PostgresUser:           "postgres",
		PostgresName:           "gigifypro",
		PostgresSSLMode:        "disable",
		DBMaxOpenConns:         20,
		DBMaxIdleConns:         5,
		JWTSecretKey:           "defaultsecret",
		AccessTokenTTLSeconds:  3600,
		RedisChannel:           "gigscore",
		OtelSampleRatio:        0.1,
		ServiceName:            "gigifypro-reputation",
		Environment:            "development",
		MetricsNamespace:       "gigifypro",
		RateLimitPerMinute:     120,
		RateLimitBurst:         20,
		RecomputeConcurrency:   8,
		ShutdownTimeoutSeconds: 15,
	}
}

// LoadConfig layers defaults, then the YAML file named by GIGIFY_CONFIG, then
// GIGIFY_* environment variables. GIGIFY_DB_DRIVER maps to db_driver.
func LoadConfig() (Config, error) {
	k := koanf.New(".")

	if path := strings.TrimSpace(os.Getenv(envConfigFile)); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr must not be empty")
	}
	switch strings.ToLower(c.DBDriver) {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("db_driver must be %q or %q, got %q", db.DriverPostgres, db.DriverSQLite, c.DBDriver)
	}
	if strings.TrimSpace(c.JWTSecretKey) == "" {
		return errors.New("jwt_secret_key must not be empty")
	}
	if c.AccessTokenTTLSeconds <= 0 {
		return errors.New("access_token_ttl_seconds must be positive")
	}
	if c.RecomputeConcurrency < 1 {
		return errors.New("recompute_concurrency must be at least 1")
	}
	return nil
}

func (c Config) DB() db.Config {
	return db.Config{
		Driver:       c.DBDriver,
		Host:         c.PostgresHost,
		Port:         c.PostgresPort,
		User:         c.PostgresUser,
		Password:     c.PostgresPassword,
		Name:         c.PostgresName,
		SSLMode:      c.PostgresSSLMode,
		SQLitePath:   c.SQLitePath,
		MaxOpenConns: c.DBMaxOpenConns,
		MaxIdleConns: c.DBMaxIdleConns,
	}
}

func (c Config) Otel() observability.OtelConfig {
	return observability.OtelConfig{
		Enabled:     c.OtelEnabled,
		ServiceName: c.ServiceName,
		Environment: c.Environment,
		Version:     c.Version,
		Endpoint:    c.OtelEndpoint,
		Insecure:    c.OtelInsecure,
		SampleRatio: c.OtelSampleRatio,
	}
}

func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenTTLSeconds) * time.Second
}

func (c Config) ShutdownTimeout() time.Duration {
	if c.ShutdownTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

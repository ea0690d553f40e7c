// Package config reads runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceDir      = "dir"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"

	FormatJSON = "json"
	FormatCSV  = "csv"
)

type Config struct {
	Source      string
	Format      string
	DataDir     string
	BaseURL     string
	HTTPTimeout time.Duration
	CacheTTL    time.Duration
	Preload     bool

	Port        string
	PostgresURL string
	Redis       Redis
	Log         Log
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Log struct {
	Level  string
	Format string
}

// Load reads envFile into the process environment when it exists and then
// builds a Config from the environment. Variables already set win over
// the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Source:      strings.ToLower(getenv("GEO_SOURCE", SourceDir)),
		Format:      strings.ToLower(getenv("GEO_FORMAT", FormatJSON)),
		DataDir:     getenv("GEO_DATA_DIR", "."),
		BaseURL:     os.Getenv("GEO_BASE_URL"),
		HTTPTimeout: 15 * time.Second,
		CacheTTL:    24 * time.Hour,
		Port:        getenv("PORT", "8080"),
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Log: Log{
			Level:  strings.ToLower(getenv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getenv("LOG_FORMAT", "json")),
		},
	}

	var err error
	if cfg.HTTPTimeout, err = durationEnv("GEO_HTTP_TIMEOUT", cfg.HTTPTimeout); err != nil {
		return nil, err
	}
	if cfg.CacheTTL, err = durationEnv("GEO_CACHE_TTL", cfg.CacheTTL); err != nil {
		return nil, err
	}
	if v := os.Getenv("GEO_PRELOAD"); v != "" {
		if cfg.Preload, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("GEO_PRELOAD: %w", err)
		}
	}
	if cfg.Redis, err = redisFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Source {
	case SourceDir, SourceHTTP, SourcePostgres:
	default:
		return fmt.Errorf("GEO_SOURCE: unknown source %q (want dir, http or postgres)", c.Source)
	}
	switch c.Format {
	case FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("GEO_FORMAT: unknown format %q (want json or csv)", c.Format)
	}
	if c.Source == SourcePostgres && c.PostgresURL == "" {
		return errors.New("POSTGRES_URL is required when GEO_SOURCE=postgres")
	}
	if c.HTTPTimeout <= 0 {
		return errors.New("GEO_HTTP_TIMEOUT must be positive")
	}
	return nil
}

// redisFromEnv returns an empty Addr unless REDIS_HOST is set.
func redisFromEnv() (Redis, error) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		return Redis{}, nil
	}
	r := Redis{
		Addr:     net.JoinHostPort(host, getenv("REDIS_PORT", "6379")),
		Password: os.Getenv("REDIS_PASS"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Redis{}, fmt.Errorf("REDIS_DB: invalid database %q", v)
		}
		r.DB = n
	}
	return r, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

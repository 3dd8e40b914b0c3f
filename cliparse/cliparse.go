// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/models"
)

// Queue backends
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// maxCookieAgeDays keeps the cookie lifetime inside time.Duration's range
const maxCookieAgeDays = 100000

type Config struct {
	Port        int
	MetricsPort int
	LogLevel    slog.Level

	OptionA string
	OptionB string

	QueueBackend string
	QueueKey     string
	QueueTimeout time.Duration

	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	DatabaseURL string

	CookieMaxAge time.Duration
}

// Options returns the configured vote labels
func (c Config) Options() models.Options {
	return models.Options{A: c.OptionA, B: c.OptionB}
}

// RedisAddr returns host:port for the Redis queue
func (c Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, strconv.Itoa(c.RedisPort))
}

// ParseFlags builds a Config from flags, falling back to the environment,
// then to a .env file in the working directory, then to defaults.
func ParseFlags(args []string) (Config, error) {
	// Real environment variables always win over .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	var timeoutSecs int
	var logLevel string

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.IntVar(&cfg.MetricsPort, "metrics-port", -1, "Metrics/health port (0 disables)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	fs.StringVar(&cfg.OptionA, "option-a", "", "First vote option label")
	fs.StringVar(&cfg.OptionB, "option-b", "", "Second vote option label")

	fs.StringVar(&cfg.QueueBackend, "queue", "", "Queue backend (redis, postgres or sqlite)")
	fs.StringVar(&cfg.QueueKey, "queue-key", "", "Queue name / Redis list key")

	fs.StringVar(&cfg.RedisHost, "redis-host", "", "Redis host")
	fs.IntVar(&cfg.RedisPort, "redis-port", 0, "Redis port")
	fs.IntVar(&cfg.RedisDB, "redis-db", -1, "Redis logical database")
	fs.IntVar(&timeoutSecs, "redis-timeout", 0, "Queue timeout in seconds")

	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL for SQL queue backends")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	var err error

	if cfg.Port == 0 {
		if cfg.Port, err = envInt("PORT", 80); err != nil {
			return Config{}, err
		}
	}
	if cfg.MetricsPort < 0 {
		if cfg.MetricsPort, err = envInt("METRICS_PORT", 0); err != nil {
			return Config{}, err
		}
	}
	if logLevel == "" {
		logLevel = envString("LOG_LEVEL", "info")
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q", logLevel)
	}

	if cfg.OptionA == "" {
		cfg.OptionA = envString("OPTION_A", models.DefaultOptionA)
	}
	if cfg.OptionB == "" {
		cfg.OptionB = envString("OPTION_B", models.DefaultOptionB)
	}
	if strings.TrimSpace(cfg.OptionA) == "" || strings.TrimSpace(cfg.OptionB) == "" {
		return Config{}, errors.New("option labels cannot be blank")
	}
	if cfg.OptionA == cfg.OptionB {
		return Config{}, errors.New("OPTION_A and OPTION_B must differ")
	}

	if cfg.QueueBackend == "" {
		cfg.QueueBackend = envString("QUEUE_BACKEND", BackendRedis)
	}
	if cfg.QueueKey == "" {
		cfg.QueueKey = envString("QUEUE_KEY", "votes")
	}

	if cfg.RedisHost == "" {
		cfg.RedisHost = envString("REDIS_HOST", "redis-6379-tcp.vote-app.local")
	}
	if cfg.RedisPort == 0 {
		if cfg.RedisPort, err = envInt("REDIS_PORT", 6379); err != nil {
			return Config{}, err
		}
	}
	if cfg.RedisDB < 0 {
		if cfg.RedisDB, err = envInt("REDIS_DB", 0); err != nil {
			return Config{}, err
		}
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")

	if timeoutSecs == 0 {
		if timeoutSecs, err = envInt("REDIS_TIMEOUT", 5); err != nil {
			return Config{}, err
		}
	}
	if timeoutSecs <= 0 {
		return Config{}, errors.New("queue timeout must be positive")
	}
	cfg.QueueTimeout = time.Duration(timeoutSecs) * time.Second

	maxAgeDays, err := envInt("COOKIE_MAX_AGE_DAYS", 3650)
	if err != nil {
		return Config{}, err
	}
	if maxAgeDays < 0 || maxAgeDays > maxCookieAgeDays {
		return Config{}, fmt.Errorf("COOKIE_MAX_AGE_DAYS must be between 0 and %d", maxCookieAgeDays)
	}
	cfg.CookieMaxAge = time.Duration(maxAgeDays) * 24 * time.Hour

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	switch cfg.QueueBackend {
	case BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = postgresURLFromEnv()
		}
	case BackendSQLite:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required for sqlite queue (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown queue backend %q", cfg.QueueBackend)
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return v, nil
}

// postgresURLFromEnv composes a connection string from POSTGRES_* variables
func postgresURLFromEnv() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(envString("POSTGRES_USER", "postgres"), envString("POSTGRES_PASSWORD", "password")),
		Host:     net.JoinHostPort(envString("POSTGRES_HOST", "postgres-5432-tcp.vote-app.local"), envString("POSTGRES_PORT", "5432")),
		Path:     "/" + envString("POSTGRES_DB", "postgres"),
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"sunflower-land"`
	Version     string `env:"VERSION" envDefault:"dev"`
	LogDir      string `env:"LOG_DIR"`

	// Operator routes (settlement, admin) require X-API-Key
	APIKey         string   `env:"API_KEY"`
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Storage
	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"data/farm.db"`
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"sunflower"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Game rules
	CatalogPath       string          `env:"CATALOG_PATH"`
	MaxSessionBalance decimal.Decimal `env:"MAX_SESSION_BALANCE" envDefault:"255"`
	StateCacheSize    int             `env:"STATE_CACHE_SIZE" envDefault:"1024"`
	StateCacheTTL     time.Duration   `env:"STATE_CACHE_TTL" envDefault:"10m"`

	// Event system
	EventMaxRetries     int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEADLETTER_PATH" envDefault:"data/deadletter.jsonl"`

	// Background jobs
	WorkerCount             int           `env:"WORKER_COUNT" envDefault:"2"`
	WorkerQueueSize         int           `env:"WORKER_QUEUE_SIZE" envDefault:"16"`
	EventLogRetentionDays   int           `env:"EVENT_LOG_RETENTION_DAYS" envDefault:"30"`
	EventLogCleanupInterval time.Duration `env:"EVENT_LOG_CLEANUP_INTERVAL" envDefault:"24h"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables. A .env file in
// the working directory is read first if present; real environment
// variables win over it.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

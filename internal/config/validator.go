package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the loaded values for consistency
func (c *Config) Validate() error {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat))
	}

	switch c.StorageDriver {
	case StorageDriverPostgres:
		var missing []string
		for name, value := range map[string]string{
			"DB_USER": c.DBUser, "DB_PASSWORD": c.DBPassword, "DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort, "DB_NAME": c.DBName,
		} {
			if value == "" {
				missing = append(missing, name)
			}
		}
		if len(missing) > 0 {
			slices.Sort(missing)
			problems = append(problems, "missing database settings: "+strings.Join(missing, ", "))
		}
		if c.DBMaxConns <= 0 {
			problems = append(problems, "DB_MAX_CONNS must be positive")
		}
	case StorageDriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLITE_PATH must be set for the sqlite driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORAGE_DRIVER %q", c.StorageDriver))
	}

	if c.StateCacheSize <= 0 {
		problems = append(problems, "STATE_CACHE_SIZE must be positive")
	}
	if c.StateCacheTTL <= 0 {
		problems = append(problems, "STATE_CACHE_TTL must be positive")
	}
	if !c.MaxSessionBalance.IsPositive() {
		problems = append(problems, "MAX_SESSION_BALANCE must be positive")
	}
	if c.EventMaxRetries < 0 {
		problems = append(problems, "EVENT_MAX_RETRIES must not be negative")
	}
	if c.WorkerCount <= 0 || c.WorkerQueueSize <= 0 {
		problems = append(problems, "WORKER_COUNT and WORKER_QUEUE_SIZE must be positive")
	}
	if isProduction(c.Environment) && c.APIKey == "" {
		problems = append(problems, "API_KEY is required in production")
	}
	if c.EventLogRetentionDays <= 0 {
		problems = append(problems, "EVENT_LOG_RETENTION_DAYS must be positive")
	}
	if c.EventLogCleanupInterval <= 0 {
		problems = append(problems, "EVENT_LOG_CLEANUP_INTERVAL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal remarks about the configuration, such as
// running production on the embedded database.
func (c *Config) Warnings() []string {
	var warnings []string

	if isProduction(c.Environment) && c.StorageDriver == StorageDriverSQLite {
		warnings = append(warnings, "STORAGE_DRIVER=sqlite is intended for development; use postgres in production")
	}
	if c.DBPassword == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == "" {
		warnings = append(warnings, "API_KEY is empty - operator routes (settlement, admin) are rejected")
	}
	if c.CatalogPath != "" {
		warnings = append(warnings, "CATALOG_PATH overrides the embedded catalog: "+c.CatalogPath)
	}

	return warnings
}

func isProduction(environment string) bool {
	return environment == EnvironmentProduction || environment == EnvironmentProd
}

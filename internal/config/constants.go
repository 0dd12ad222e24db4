package config

// Storage drivers
const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

// Environments that get stricter validation
const (
	EnvironmentProduction = "production"
	EnvironmentProd       = "prod"
)

// Log formats understood by the logger
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion     = "ENV_SCHEMA_VERSION"
	EnvOpsPort           = "OPS_PORT"
	EnvOpsAPIKey         = "OPS_API_KEY"
	EnvTrustedProxies    = "TRUSTED_PROXIES"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdle     = "DB_MAX_CONN_IDLE"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"
	EnvDBCloseTimeout    = "DB_CLOSE_TIMEOUT"
	EnvCacheSize         = "CACHE_SIZE"
	EnvCacheTTL          = "CACHE_TTL"
)

// Defaults applied when a variable is unset
const (
	DefaultOpsPort           = 8081
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultServiceName       = "meal-planner"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
	DefaultDBUser            = "postgres"
	DefaultDBPassword        = "postgres"
	DefaultDBHost            = "localhost"
	DefaultDBPort            = "5432"
	DefaultDBName            = "mealplanner"
	DefaultDBMaxConns        = 1
	DefaultDBMaxConnIdle     = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultDBCloseTimeout    = 10 * time.Second
	DefaultCacheSize         = 256
	DefaultCacheTTL          = 5 * time.Minute
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleDBPassword = "change_this_secure_password"
)

package config

import "time"

// Environment variable keys
const (
	EnvKeyPort        = "PORT"
	EnvKeyLogLevel    = "LOG_LEVEL"
	EnvKeyLogFormat   = "LOG_FORMAT"
	EnvKeyEnvironment = "ENVIRONMENT"
	EnvKeyVersion     = "VERSION"
	EnvKeyDBUser      = "DB_USER"
	EnvKeyDBPassword  = "DB_PASSWORD"
	EnvKeyDBHost      = "DB_HOST"
	EnvKeyDBPort      = "DB_PORT"
	EnvKeyDBName      = "DB_NAME"
	EnvKeyAPIKey      = "API_KEY"
	EnvKeyPokeAPIURL  = "POKEAPI_URL"

	EnvKeyDBMaxConns     = "DB_MAX_CONNS"
	EnvKeyDBMaxIdleTime  = "DB_MAX_IDLE_TIME"
	EnvKeyDBMaxLifetime  = "DB_MAX_LIFETIME"
	EnvKeyTrustedProxies = "TRUSTED_PROXIES"
)

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"
	DefaultServiceName = "pokecode"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "pokecode"
	DefaultPokeAPIURL  = "https://pokeapi.co/api/v2"

	DefaultDBMaxConns = 20
)

// Default connection pool timing
const (
	DefaultDBMaxIdleTime = 5 * time.Minute
	DefaultDBMaxLifetime = 30 * time.Minute
)

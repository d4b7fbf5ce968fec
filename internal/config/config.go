package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	LogLevel       string
	LogFormat      string
	Environment    string
	Version        string
	ServiceName    string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	DBMaxConns     int
	DBMaxIdleTime  time.Duration
	DBMaxLifetime  time.Duration
	APIKey         string   // API key for authentication
	PokeAPIURL     string   // base URL of the entity detail source
	TrustedProxies []string // proxies whose X-Forwarded-For is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvKeyLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvKeyLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvKeyEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvKeyVersion, DefaultVersion),
		ServiceName: DefaultServiceName,
		DBUser:      getEnv(EnvKeyDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvKeyDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvKeyDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvKeyDBPort, DefaultDBPort),
		DBName:      getEnv(EnvKeyDBName, DefaultDBName),
		APIKey:      getEnv(EnvKeyAPIKey, ""),
		PokeAPIURL:  getEnv(EnvKeyPokeAPIURL, DefaultPokeAPIURL),
	}

	portStr := getEnv(EnvKeyPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	cfg.DBMaxConns = getEnvInt(EnvKeyDBMaxConns, DefaultDBMaxConns)
	cfg.DBMaxIdleTime = getEnvDuration(EnvKeyDBMaxIdleTime, DefaultDBMaxIdleTime)
	cfg.DBMaxLifetime = getEnvDuration(EnvKeyDBMaxLifetime, DefaultDBMaxLifetime)

	if proxies := getEnv(EnvKeyTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable, falling back to the
// default on absence or parse failure
func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvDuration retrieves a duration environment variable, falling back to
// the default on absence or parse failure
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
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

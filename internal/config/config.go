package config

import (
	"os"
	"strconv"

	"cyberrisk/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Simulation SimulationConfig
	Profiling  ProfilingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database connection settings. URL may be empty,
// in which case runs are kept in the in-memory store.
type DatabaseConfig struct {
	URL string
}

// SimulationConfig holds engine guardrails and reporting defaults
type SimulationConfig struct {
	// MaxIterations caps the per-request Monte Carlo sample count
	// accepted over the API.
	MaxIterations int
	// MaxConcurrentRuns bounds the background worker pool.
	MaxConcurrentRuns int
	// Currency is the reporting currency code (GBP, EUR, USD).
	Currency string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Simulation: SimulationConfig{
			MaxIterations:     getEnvIntOrDefault("MAX_ITERATIONS", 1_000_000),
			MaxConcurrentRuns: getEnvIntOrDefault("MAX_CONCURRENT_RUNS", 4),
			Currency:          getEnvOrDefault("CURRENCY", "GBP"),
		},
		Profiling: ProfilingConfig{
			Port:    getEnvOrDefault("PPROF_PORT", "6060"),
			Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Simulation.MaxIterations < 1 {
		return errors.ConfigInvalid("MAX_ITERATIONS must be at least 1")
	}
	if config.Simulation.MaxConcurrentRuns < 1 {
		return errors.ConfigInvalid("MAX_CONCURRENT_RUNS must be at least 1")
	}
	switch config.Simulation.Currency {
	case "GBP", "EUR", "USD":
	default:
		return errors.ConfigInvalid("CURRENCY must be one of GBP, EUR, USD")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Package config loads the small set of environment-tunable defaults
// this module's CLI demo uses. Library code never reads the environment
// itself; callers pass a Config (or their own values) into constructors.
package config

import (
	"os"
	"strconv"
)

// Config holds the default knobs for the codecs and their logger.
type Config struct {
	// CostBudgetBits is the default interval-trainer cost budget B,
	// used when a caller doesn't supply one explicitly.
	CostBudgetBits int

	// DictSize is the default N for the HalfDict-Quantile outer layer.
	DictSize int

	// LogLevel and Environment are forwarded to internal/logger.
	LogLevel    string
	Environment string
}

// Load reads Config from the environment with sensible defaults.
func Load() Config {
	return Config{
		CostBudgetBits: getEnvIntOrDefault("IPCOLUMN_COST_BUDGET_BITS", 64),
		DictSize:       getEnvIntOrDefault("IPCOLUMN_DICT_SIZE", 256),
		LogLevel:       getEnvOrDefault("IPCOLUMN_LOG_LEVEL", "info"),
		Environment:    getEnvOrDefault("IPCOLUMN_ENVIRONMENT", "development"),
	}
}

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

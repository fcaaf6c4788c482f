// Package config provides configuration management for the accounting system.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// DBPath is the SQLite database file path.
	DBPath string

	// SeedPath optionally points to a YAML chart-of-accounts file used to
	// seed an empty database. Empty means the built-in default chart.
	SeedPath string

	// ResultRootCode is the account code rooting the income-statement
	// subtree.
	ResultRootCode string

	Debug bool
}

// Load loads configuration from environment variables. It automatically loads
// a .env file from the current directory if available. You can optionally
// specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Port:           getEnvOrDefault("PORT", "3000"),
		DBPath:         getEnvOrDefault("DB_PATH", "./data/contabil.db"),
		SeedPath:       os.Getenv("SEED_PATH"),
		ResultRootCode: getEnvOrDefault("RESULT_ROOT_CODE", "4"),
		Debug:          os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

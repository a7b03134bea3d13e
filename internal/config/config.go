// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// PasswordEncoder selects how password values are encoded ("argon2id", "bcrypt", "legacy").
	PasswordEncoder string
	// PasswordHashPolicy is the Argon2id cost policy ("interactive", "moderate").
	PasswordHashPolicy string
	// BcryptCost is the bcrypt work factor used when PasswordEncoder is "bcrypt".
	BcryptCost int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string

	// BatchConcurrency is the maximum number of values checked in parallel by batch checks.
	BatchConcurrency int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Password encoding
		PasswordEncoder:    env.GetString("PASSWORD_ENCODER", "argon2id"),
		PasswordHashPolicy: env.GetString("PASSWORD_HASH_POLICY", "moderate"),
		BcryptCost:         env.GetInt("BCRYPT_COST", 10),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "idvalues"),

		// Batch checks
		BatchConcurrency: env.GetInt("BATCH_CONCURRENCY", 8),
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

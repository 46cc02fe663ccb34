package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Snapshot SnapshotConfig
	CORS     CORSConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SnapshotConfig holds the persistence settings: where the collection
// snapshot lives, how long to coalesce writes after a mutation burst, and
// whether an absent snapshot gets the seed data.
type SnapshotConfig struct {
	Path        string
	Debounce    time.Duration
	SeedOnEmpty bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Snapshot configuration
	debounce, err := time.ParseDuration(getEnv("SNAPSHOT_DEBOUNCE", "300ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_DEBOUNCE: %w", err)
	}

	config.Snapshot = SnapshotConfig{
		Path:        getEnv("SNAPSHOT_PATH", "data/employees.json"),
		Debounce:    debounce,
		SeedOnEmpty: getEnv("SEED_ON_EMPTY", "true") == "true",
	}

	// CORS configuration
	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Snapshot.Path == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required")
	}
	if c.Snapshot.Debounce < 0 {
		return fmt.Errorf("SNAPSHOT_DEBOUNCE must not be negative")
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback []string) []string {
	value := os.Getenv(env)
	if value == "" {
		return fallback
	}
	return strings.Split(value, ",")
}

// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aristath/greenmix/internal/scheduler"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir                 string // Base directory for all databases (always absolute)
	Port                    int
	LogLevel                string
	DevMode                 bool
	SessionTTL              time.Duration
	RecommendationCacheSize int
	SessionPurgeSchedule    string
	WALCheckpointSchedule   string
	MaintenanceSchedule     string
	CORSAllowedOrigins      []string
}

// Load reads configuration from a .env file (if present) and the environment
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	absDataDir, err := filepath.Abs(getEnv("GREENMIX_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:                 absDataDir,
		Port:                    getEnvAsInt("GO_PORT", 8001),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		DevMode:                 getEnvAsBool("DEV_MODE", false),
		SessionTTL:              time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 720)) * time.Hour,
		RecommendationCacheSize: getEnvAsInt("RECOMMENDATION_CACHE_SIZE", 256),
		SessionPurgeSchedule:    getEnv("SESSION_PURGE_SCHEDULE", "@hourly"),
		WALCheckpointSchedule:   getEnv("WAL_CHECKPOINT_SCHEDULE", "0 */30 * * * *"),
		MaintenanceSchedule:     getEnv("MAINTENANCE_SCHEDULE", "0 0 3 * * 0"), // Sunday 03:00
		CORSAllowedOrigins:      []string{"*"},
	}

	if cfg.DevMode {
		cfg.CORSAllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks ranges and schedule syntax
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("GO_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}
	if c.RecommendationCacheSize < 0 {
		return fmt.Errorf("RECOMMENDATION_CACHE_SIZE cannot be negative, got %d", c.RecommendationCacheSize)
	}

	schedules := []struct{ env, spec string }{
		{"SESSION_PURGE_SCHEDULE", c.SessionPurgeSchedule},
		{"WAL_CHECKPOINT_SCHEDULE", c.WALCheckpointSchedule},
		{"MAINTENANCE_SCHEDULE", c.MaintenanceSchedule},
	}
	for _, sch := range schedules {
		if err := scheduler.ValidateSpec(sch.spec); err != nil {
			return fmt.Errorf("invalid %s %q: %w", sch.env, sch.spec, err)
		}
	}

	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"inventory-service/internal/model"
)

// Config represents the application configuration
type Config struct {
	Server  ServerConfig
	Ledger  LedgerConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// LedgerConfig holds ledger-related configuration
type LedgerConfig struct {
	// DefaultEntryDate is the date stamped on movements whose request left
	// the date unset. It stands in for "today": the ledger has no real
	// clock source and callers may override the date freely.
	DefaultEntryDate model.Date

	// RecentLimit caps the transaction listing when the request does not
	// specify its own limit.
	RecentLimit int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	entryDate, err := parseDate(getEnv("LEDGER_DEFAULT_ENTRY_DATE", "2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_DEFAULT_ENTRY_DATE: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8086"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Ledger: LedgerConfig{
			DefaultEntryDate: entryDate,
			RecentLimit:      getEnvAsInt("LEDGER_RECENT_LIMIT", 20),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "inventory"),
		},
	}, nil
}

// parseDate parses a YYYY-MM-DD string into a model.Date. Only the shape is
// checked; the ledger accepts any year/month/day triple.
func parseDate(value string) (model.Date, error) {
	var d model.Date
	if _, err := fmt.Sscanf(value, "%d-%d-%d", &d.Year, &d.Month, &d.Day); err != nil {
		return model.Date{}, err
	}
	return d, nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

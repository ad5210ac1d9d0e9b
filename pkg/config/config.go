package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Series generation defaults
	Series SeriesConfig

	// Presentation content
	ContentPath string // YAML deck content; empty = compiled-in defaults

	// Chart export
	Export ExportConfig

	// Logging
	LogLevel  string
	LogFormat string

	// Rate limiting
	RateLimit      float64 // requests per second
	RateLimitBurst int
}

// SeriesConfig holds defaults for the synthetic series generator
type SeriesConfig struct {
	HorizonDays    int
	Seed           int64 // 0 = entropy-seeded, varies per call
	PeriodsPerYear int
	RiskFreeRate   float64
}

// ExportConfig holds static chart export configuration
type ExportConfig struct {
	OutputDir       string
	RefreshEnabled  bool
	RefreshSchedule string // cron spec (with seconds field)
	RefreshTimeout  time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8089"),
		Env:  getEnv("ENV", "development"),

		Series: SeriesConfig{
			HorizonDays:    getEnvAsInt("SERIES_HORIZON_DAYS", 75),
			Seed:           getEnvAsInt64("SERIES_SEED", 0),
			PeriodsPerYear: getEnvAsInt("SERIES_PERIODS_PER_YEAR", 252),
			RiskFreeRate:   getEnvAsFloat("SERIES_RISK_FREE_RATE", 0.03),
		},

		ContentPath: getEnv("DECK_CONTENT_PATH", ""),

		Export: ExportConfig{
			OutputDir:       getEnv("EXPORT_OUTPUT_DIR", "charts"),
			RefreshEnabled:  getEnvAsBool("EXPORT_REFRESH_ENABLED", false),
			RefreshSchedule: getEnv("EXPORT_REFRESH_SCHEDULE", "0 0 6 * * *"),
			RefreshTimeout:  getEnvAsDuration("EXPORT_REFRESH_TIMEOUT", "1m"),
		},

		LogLevel:  getEnv("LOG_LEVEL", "debug"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		RateLimit:      getEnvAsFloat("RATE_LIMIT_RPS", 20),
		RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 40),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Series.HorizonDays <= 0 {
		return fmt.Errorf("SERIES_HORIZON_DAYS must be positive")
	}

	if c.Series.PeriodsPerYear <= 0 {
		return fmt.Errorf("SERIES_PERIODS_PER_YEAR must be positive")
	}

	if c.RateLimit <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit settings must be positive")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}

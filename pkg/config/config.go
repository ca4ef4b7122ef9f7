package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all pipeline configuration
type Config struct {
	// App
	Env string

	// Corpus
	NotesDir string

	// Navigation
	MaxNavDepth int

	// Repair
	MinConfidence float64

	// Extraction
	ExtractWorkers int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Env:            getEnv("ENV", "development"),
		NotesDir:       getEnv("NOTES_DIR", "notes"),
		MaxNavDepth:    getEnvInt("MAX_NAV_DEPTH", 3),
		MinConfidence:  getEnvFloat("MIN_CONFIDENCE", 0.8),
		ExtractWorkers: getEnvInt("EXTRACT_WORKERS", 4),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable
func (c *Config) Validate() error {
	if c.NotesDir == "" {
		return fmt.Errorf("NOTES_DIR is required")
	}
	if c.MaxNavDepth < 1 {
		return fmt.Errorf("MAX_NAV_DEPTH must be at least 1")
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("MIN_CONFIDENCE must be between 0 and 1")
	}
	if c.ExtractWorkers < 1 {
		return fmt.Errorf("EXTRACT_WORKERS must be at least 1")
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.ParseFloat(value, 64); err == nil {
			return result
		}
	}
	return defaultValue
}

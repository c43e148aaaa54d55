// Package config provides configuration loading for the server and CLI.
// Values come from a JSON file, the environment, or flags; flags win over
// the file, the file wins over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults used when neither flags, file, nor environment provide a value.
const (
	DefaultPort            = 8080
	DefaultPageSize        = 20
	DefaultBreakerFailures = 3
	DefaultBreakerCooldown = 5 * time.Minute
)

// Config holds every tunable of the service. All fields are optional;
// unconfigured providers degrade to their fallbacks rather than failing
// startup.
type Config struct {
	// Server
	Port     int `json:"port,omitempty"`
	PageSize int `json:"page_size,omitempty"`

	// Provider credentials
	GeminiAPIKey  string `json:"gemini_api_key,omitempty"`
	RapidAPIKey   string `json:"rapidapi_key,omitempty"`
	YouTubeAPIKey string `json:"youtube_api_key,omitempty"`

	// Persistence
	DatabaseURL string `json:"database_url,omitempty"`

	// AI circuit breaker
	BreakerFailures int    `json:"breaker_failures,omitempty"`
	BreakerCooldown string `json:"breaker_cooldown,omitempty"` // Go duration string

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	cfg := Config{
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		RapidAPIKey:     os.Getenv("RAPIDAPI_KEY"),
		YouTubeAPIKey:   os.Getenv("YOUTUBE_API_KEY"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		BreakerCooldown: os.Getenv("AI_BREAKER_COOLDOWN"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	if failures, err := strconv.Atoi(os.Getenv("AI_BREAKER_FAILURES")); err == nil {
		cfg.BreakerFailures = failures
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}
	if c.BreakerFailures < 0 {
		return fmt.Errorf("config error: 'breaker_failures' must be non-negative")
	}
	if c.BreakerCooldown != "" {
		if _, err := time.ParseDuration(c.BreakerCooldown); err != nil {
			return fmt.Errorf("config error: 'breaker_cooldown' is not a valid duration: %w", err)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.RapidAPIKey == "" {
		result.RapidAPIKey = defaults.RapidAPIKey
	}
	if result.YouTubeAPIKey == "" {
		result.YouTubeAPIKey = defaults.YouTubeAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.BreakerFailures == 0 {
		result.BreakerFailures = defaults.BreakerFailures
	}
	if result.BreakerCooldown == "" {
		result.BreakerCooldown = defaults.BreakerCooldown
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	return result
}

// Cooldown parses the breaker cooldown, falling back to the default.
func (c *Config) Cooldown() time.Duration {
	if c.BreakerCooldown == "" {
		return DefaultBreakerCooldown
	}
	d, err := time.ParseDuration(c.BreakerCooldown)
	if err != nil {
		return DefaultBreakerCooldown
	}
	return d
}

// Package config provides configuration loading for the library.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// PostcodeConfig provides settings for the postcode.tech API client.
type PostcodeConfig interface {
	GetPostcodeAPIToken() string
	GetPostcodeBaseURL() string
	GetPostcodeHTTPTimeout() time.Duration
	IsPostcodeEnabled() bool
}

// Config holds all configuration values.
type Config struct {
	Env                 string
	PostcodeAPIToken    string
	PostcodeBaseURL     string
	PostcodeHTTPTimeout time.Duration
}

// PostcodeConfig implementation
func (c *Config) GetPostcodeAPIToken() string { return c.PostcodeAPIToken }
func (c *Config) GetPostcodeBaseURL() string  { return c.PostcodeBaseURL }
func (c *Config) GetPostcodeHTTPTimeout() time.Duration {
	return c.PostcodeHTTPTimeout
}
func (c *Config) IsPostcodeEnabled() bool { return c.PostcodeAPIToken != "" }

// Load reads configuration from environment variables.
// A missing API token is not an error: the postcode module degrades
// gracefully when unconfigured.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		PostcodeAPIToken:    getEnv("POSTCODE_API_TOKEN", ""),
		PostcodeBaseURL:     getEnv("POSTCODE_BASE_URL", ""),
		PostcodeHTTPTimeout: mustDuration(getEnv("POSTCODE_HTTP_TIMEOUT", "10s")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

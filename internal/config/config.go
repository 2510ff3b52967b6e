package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Porter   PorterConfig
	IPLookup IPLookupConfig
	CORS     CORSConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// PorterConfig holds the upstream Porter API configuration.
// It is set once at boot and never mutated.
type PorterConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// IPLookupConfig holds the public IP echo service configuration
type IPLookupConfig struct {
	URL     string
	Timeout time.Duration
}

// CORSConfig holds cross-origin configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Host: getEnv("HOST", "0.0.0.0"),
		},
		Porter: PorterConfig{
			BaseURL: strings.TrimRight(getEnv("PORTER_BASE_URL", ""), "/"),
			APIKey:  getEnv("PORTER_API_KEY", ""),
			Timeout: parseDuration(getEnv("PORTER_TIMEOUT", "10s"), 10*time.Second),
		},
		IPLookup: IPLookupConfig{
			URL:     getEnv("IP_LOOKUP_URL", "https://api.ipify.org?format=json"),
			Timeout: parseDuration(getEnv("IP_LOOKUP_TIMEOUT", "5s"), 5*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseStringList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "INFO"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the fields the gateway cannot run without
func (c *Config) Validate() error {
	if c.Porter.BaseURL == "" {
		return fmt.Errorf("PORTER_BASE_URL is required")
	}
	u, err := url.Parse(c.Porter.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("PORTER_BASE_URL must be an absolute http(s) URL, got %q", c.Porter.BaseURL)
	}
	if c.Porter.APIKey == "" {
		return fmt.Errorf("PORTER_API_KEY is required")
	}
	if c.Porter.Timeout <= 0 {
		return fmt.Errorf("PORTER_TIMEOUT must be positive")
	}
	if c.IPLookup.URL == "" {
		return fmt.Errorf("IP_LOOKUP_URL must not be empty")
	}
	return nil
}

// Address returns the listen address
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseDuration parses string to time.Duration with default value
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}

// parseStringList parses comma-separated string to slice
func parseStringList(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

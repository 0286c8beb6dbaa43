// Package config provides configuration loading and validation for the
// server and CLI, plus the password and token settings used by auth.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents application configuration loadable from a JSON file.
// All fields are optional; missing values use defaults or come from
// environment variables and CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Backing services
	DatabaseURL  string `json:"database_url,omitempty"`   // PostgreSQL connection URL
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key
	GeminiModel  string `json:"gemini_model,omitempty"`   // Gemini model name

	// Export behavior
	InterestAlignment string `json:"interest_alignment,omitempty"` // left, center, right, justify
	UseBrowser        bool   `json:"use_browser,omitempty"`        // Headless browser for SPA job boards

	// Diagnostics
	Debug bool `json:"debug,omitempty"` // Sanitizer warnings and verbose logs
}

// DefaultPort is the HTTP listen port when nothing else sets one.
const DefaultPort = 8080

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
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

// FromEnv fills unset fields from environment variables: PORT,
// DATABASE_URL, GEMINI_API_KEY, GEMINI_MODEL.
func (c *Config) FromEnv() error {
	if c.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return fmt.Errorf("invalid PORT: %v", err)
			}
			c.Port = port
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		c.GeminiModel = os.Getenv("GEMINI_MODEL")
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Required fields are enforced by the commands that need them.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}

	switch c.InterestAlignment {
	case "", "left", "center", "right", "justify":
	default:
		return fmt.Errorf("config error: 'interest_alignment' must be left, center, right, or justify")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This applies config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.InterestAlignment == "" {
		result.InterestAlignment = defaults.InterestAlignment
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

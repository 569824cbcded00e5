// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ourgorithm/seo-audit/internal/retrieval"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        string `json:"port,omitempty"`         // HTTP listen port for serve

	// Retrieval
	Relays    []retrieval.RelayTemplate `json:"relays,omitempty"`     // CORS relay chain, tried in order
	UserAgent string                    `json:"user_agent,omitempty"` // User-Agent sent on relay requests

	// Reporting
	CompanyName  string `json:"company_name,omitempty"`  // Branding on rendered reports
	PrimaryColor string `json:"primary_color,omitempty"` // Branding accent color (hex)
	LogoURL      string `json:"logo_url,omitempty"`      // Branding logo image URL

	// Notification
	NotifyEmail string `json:"notify_email,omitempty"` // Recipient for sprint request notifications

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	for i, relay := range c.Relays {
		if relay.Name == "" {
			return fmt.Errorf("config error: relay %d is missing a name", i)
		}
		if !strings.Contains(relay.URLTemplate, "%s") {
			return fmt.Errorf("config error: relay %q url_template must contain a %%s placeholder", relay.Name)
		}
	}

	if c.PrimaryColor != "" && !strings.HasPrefix(c.PrimaryColor, "#") {
		return fmt.Errorf("config error: 'primary_color' must be a hex color like #2d3748")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.UserAgent == "" {
		result.UserAgent = defaults.UserAgent
	}
	if result.CompanyName == "" {
		result.CompanyName = defaults.CompanyName
	}
	if result.PrimaryColor == "" {
		result.PrimaryColor = defaults.PrimaryColor
	}
	if result.LogoURL == "" {
		result.LogoURL = defaults.LogoURL
	}
	if result.NotifyEmail == "" {
		result.NotifyEmail = defaults.NotifyEmail
	}

	if len(result.Relays) == 0 {
		result.Relays = defaults.Relays
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// RelayChain returns the configured relay chain, or the built-in default chain
// when the config does not override it.
func (c *Config) RelayChain() []retrieval.Relay {
	if len(c.Relays) == 0 {
		return retrieval.DefaultRelays()
	}
	return retrieval.RelaysFromTemplates(c.Relays)
}

// DatabaseURLFromEnv returns the config value, falling back to the
// DATABASE_URL environment variable.
func (c *Config) DatabaseURLFromEnv() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return os.Getenv("DATABASE_URL")
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Brand   string `json:"brand,omitempty"`    // Path to brand profile YAML
	Request string `json:"request,omitempty"`  // Path to content request YAML
	Matrix  string `json:"matrix,omitempty"`   // Path to illegal combination matrix YAML
	BaseDir string `json:"base_dir,omitempty"` // Root for outputs, packages, and the context cache

	// Run identity
	RunID string `json:"run_id,omitempty"` // Run identifier; generated when empty

	// Behavior
	APIKey                string `json:"api_key,omitempty"`                  // Gemini API key for the editorial pass
	UseBrowser            bool   `json:"use_browser,omitempty"`              // Use headless browser for SPA sources
	BuildContextIfMissing bool   `json:"build_context_if_missing,omitempty"` // Build the brand context when no cache exists
	WritePackage          bool   `json:"write_package,omitempty"`            // Also write a Content Package for blog deliveries
	Verbose               bool   `json:"verbose,omitempty"`                  // Print detailed debug information
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
	if c.Brand != "" {
		if _, err := os.Stat(c.Brand); os.IsNotExist(err) {
			return fmt.Errorf("config error: brand file not found: %s", c.Brand)
		}
	}
	if c.Request != "" {
		if _, err := os.Stat(c.Request); os.IsNotExist(err) {
			return fmt.Errorf("config error: request file not found: %s", c.Request)
		}
	}
	if c.Matrix != "" {
		if _, err := os.Stat(c.Matrix); os.IsNotExist(err) {
			return fmt.Errorf("config error: matrix file not found: %s", c.Matrix)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Brand == "" {
		result.Brand = defaults.Brand
	}
	if result.Request == "" {
		result.Request = defaults.Request
	}
	if result.Matrix == "" {
		result.Matrix = defaults.Matrix
	}
	if result.BaseDir == "" {
		result.BaseDir = defaults.BaseDir
	}
	if result.RunID == "" {
		result.RunID = defaults.RunID
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Booleans: true wins; flags can only turn behavior on
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.BuildContextIfMissing = result.BuildContextIfMissing || defaults.BuildContextIfMissing
	result.WritePackage = result.WritePackage || defaults.WritePackage
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

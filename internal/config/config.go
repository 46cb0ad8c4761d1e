// Package config provides configuration loading and validation for the CLI
// and server.
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
	Resume  string `json:"resume,omitempty"`   // Path to resume JSON file
	JobFile string `json:"job_file,omitempty"` // Path to job posting HTML/text file
	JobURL  string `json:"job_url,omitempty"`  // URL to fetch job posting from

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for deep analysis
	UseBrowser  bool   `json:"use_browser,omitempty"`  // Use headless browser for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address
}

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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.JobFile != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job_file' and 'job_url' are mutually exclusive")
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.JobFile != "" {
		if _, err := os.Stat(c.JobFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.JobFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled
// from defaults. Config file values act as defaults for CLI flags; bools are
// not merged because unset and false are indistinguishable.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.JobFile == "" {
		result.JobFile = defaults.JobFile
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ListenAddr == "" {
		if defaults.ListenAddr != "" {
			result.ListenAddr = defaults.ListenAddr
		} else {
			result.ListenAddr = ":8080"
		}
	}

	return result
}

// Package config loads and persists scraper settings from an HCL file
// in the user's configuration directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/aipokercoach/handscraper/internal/fileutil"
)

// Config represents the complete scraper configuration
type Config struct {
	Scraper ScraperSettings `hcl:"scraper,block"`
	Server  ServerSettings  `hcl:"server,block"`
	Logging LoggingSettings `hcl:"logging,block"`
}

// ScraperSettings contains hand history scanning settings
type ScraperSettings struct {
	HandHistoryDir      string `hcl:"hand_history_dir"`
	PollIntervalSeconds int    `hcl:"poll_interval_seconds,optional"`
	Workers             int    `hcl:"workers,optional"`
}

// ServerSettings contains upload server settings
type ServerSettings struct {
	URL            string `hcl:"url"`
	RequestTimeout int    `hcl:"request_timeout,optional"`
}

// LoggingSettings contains log output settings
type LoggingSettings struct {
	Level string `hcl:"level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Scraper: ScraperSettings{
			HandHistoryDir:      "",
			PollIntervalSeconds: 30,
			Workers:             4,
		},
		Server: ServerSettings{
			URL:            "http://localhost:3000",
			RequestTimeout: 30,
		},
		Logging: LoggingSettings{
			Level: "info",
		},
	}
}

// DefaultPath returns the default configuration file location
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config directory: %w", err)
	}
	return filepath.Join(dir, "handscraper", "config.hcl"), nil
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults rather than an error.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := Default()

	if config.Scraper.PollIntervalSeconds == 0 {
		config.Scraper.PollIntervalSeconds = defaults.Scraper.PollIntervalSeconds
	}
	if config.Scraper.Workers == 0 {
		config.Scraper.Workers = defaults.Scraper.Workers
	}
	if config.Server.URL == "" {
		config.Server.URL = defaults.Server.URL
	}
	if config.Server.RequestTimeout == 0 {
		config.Server.RequestTimeout = defaults.Server.RequestTimeout
	}
	if config.Logging.Level == "" {
		config.Logging.Level = defaults.Logging.Level
	}

	return &config, nil
}

// Save writes the configuration to filename, creating parent
// directories as needed.
func (c *Config) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(c, f.Body())

	if err := fileutil.WriteFileAtomic(filename, f.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Scraper.HandHistoryDir == "" {
		return fmt.Errorf("hand history directory is required")
	}

	if c.Scraper.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll interval must be positive")
	}

	if c.Scraper.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	if c.Server.URL == "" {
		return fmt.Errorf("server URL is required")
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

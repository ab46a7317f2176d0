// Package config handles configuration loading and validation for labelpress.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Label      Label    `yaml:"label"`
	Printing   Printing `yaml:"printing"`
	AutoPrint  bool     `yaml:"auto_print"`
	MaxHistory int      `yaml:"max_history"`
	DataDir    string   `yaml:"-"` // set by caller, not from config file
}

// Label holds label rendering dimensions in pixels.
type Label struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

// Printing holds print subsystem command overrides.
type Printing struct {
	LpPath     string `yaml:"lp_path"`
	LpstatPath string `yaml:"lpstat_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Label: Label{
			Width:  600,
			Height: 300,
			Margin: 20,
		},
		Printing: Printing{
			LpPath:     "lp",
			LpstatPath: "lpstat",
		},
		AutoPrint:  true,
		MaxHistory: 0,
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Label.Width == 0 {
		c.Label.Width = defaults.Label.Width
	}
	if c.Label.Height == 0 {
		c.Label.Height = defaults.Label.Height
	}
	if c.Printing.LpPath == "" {
		c.Printing.LpPath = defaults.Printing.LpPath
	}
	if c.Printing.LpstatPath == "" {
		c.Printing.LpstatPath = defaults.Printing.LpstatPath
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if c.Label.Width < 1 || c.Label.Height < 1 {
		return fmt.Errorf("label dimensions must be positive, got %dx%d", c.Label.Width, c.Label.Height)
	}

	if c.Label.Margin < 0 {
		return fmt.Errorf("label margin cannot be negative")
	}

	if 2*c.Label.Margin >= min(c.Label.Width, c.Label.Height) {
		return fmt.Errorf("label margin %d leaves no room for the barcode", c.Label.Margin)
	}

	if c.MaxHistory < 0 {
		return fmt.Errorf("max_history cannot be negative")
	}

	return nil
}

// SettingsFile returns the path to the persisted printer selection.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.DataDir, "settings.json")
}

// HistoryFile returns the path to the print history log.
func (c *Config) HistoryFile() string {
	return filepath.Join(c.DataDir, "history.jsonl")
}

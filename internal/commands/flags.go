package commands

import (
	"os"
	"path/filepath"

	"github.com/dannyphamv/labelpress/internal/core/config"
	"github.com/dannyphamv/labelpress/internal/press"
	"github.com/dannyphamv/labelpress/pkg/executil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Service is the press service for orchestrating operations
	Service *press.Service

	// Executor runs external commands (capability probes, doctor checks)
	Executor executil.Executor
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "labelpress", "config.yaml")
}

// DefaultDataDir returns the default data directory using XDG_DATA_HOME.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "labelpress")
}

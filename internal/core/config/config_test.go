package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		dataDir := t.TempDir()

		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), dataDir)
		require.NoError(t, err)

		assert.Equal(t, 600, cfg.Label.Width)
		assert.Equal(t, 300, cfg.Label.Height)
		assert.Equal(t, "lp", cfg.Printing.LpPath)
		assert.True(t, cfg.AutoPrint)
		assert.Equal(t, dataDir, cfg.DataDir)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
label:
  width: 800
  height: 400
printing:
  lp_path: /opt/cups/bin/lp
auto_print: false
max_history: 500
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path, t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, 800, cfg.Label.Width)
		assert.Equal(t, 400, cfg.Label.Height)
		assert.Equal(t, "/opt/cups/bin/lp", cfg.Printing.LpPath)
		assert.Equal(t, "lpstat", cfg.Printing.LpstatPath)
		assert.False(t, cfg.AutoPrint)
		assert.Equal(t, 500, cfg.MaxHistory)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("label: ["), 0o644))

		_, err := Load(path, t.TempDir())
		require.Error(t, err)
	})

	t.Run("empty data dir rejected", func(t *testing.T) {
		_, err := Load("", "")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.DataDir = "/tmp/labelpress"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero label width",
			mutate:  func(c *Config) { c.Label.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative margin",
			mutate:  func(c *Config) { c.Label.Margin = -1 },
			wantErr: true,
		},
		{
			name:    "margin swallows label",
			mutate:  func(c *Config) { c.Label.Margin = 150 },
			wantErr: true,
		},
		{
			name:    "negative max history",
			mutate:  func(c *Config) { c.MaxHistory = -1 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = "/data/labelpress"

	assert.Equal(t, filepath.Join("/data/labelpress", "settings.json"), cfg.SettingsFile())
	assert.Equal(t, filepath.Join("/data/labelpress", "history.jsonl"), cfg.HistoryFile())
}

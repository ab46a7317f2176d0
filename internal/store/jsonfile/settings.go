package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dannyphamv/labelpress/internal/core/printing"
)

// SettingsStore implements printing.SettingsStore using a JSON file.
type SettingsStore struct {
	path string
	log  zerolog.Logger
	mu   sync.RWMutex
}

// NewSettingsStore creates a new JSON file settings store at the given path.
func NewSettingsStore(path string, log zerolog.Logger) *SettingsStore {
	return &SettingsStore{path: path, log: log}
}

// Load returns the stored settings. A missing or unreadable file yields
// zero-value settings with a logged warning; loading never fails.
func (s *SettingsStore) Load(ctx context.Context) printing.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("settings file unreadable, using defaults")
		}
		return printing.Settings{}
	}

	var settings printing.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("settings file corrupted, using defaults")
		return printing.Settings{}
	}

	return settings
}

// Save writes the settings to disk atomically, creating parent
// directories if needed.
func (s *SettingsStore) Save(ctx context.Context, settings printing.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename settings file: %w", err)
	}

	return nil
}

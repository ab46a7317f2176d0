package printing

import "context"

// Settings holds the operator's persisted printer selection.
type Settings struct {
	LastPrinter string `json:"last_printer"`
}

// SettingsStore persists Settings across process restarts.
type SettingsStore interface {
	// Load returns the stored settings. A missing or unreadable file
	// yields zero-value settings; loading never fails.
	Load(ctx context.Context) Settings
	// Save writes the settings, creating parent directories if needed.
	Save(ctx context.Context, s Settings) error
}

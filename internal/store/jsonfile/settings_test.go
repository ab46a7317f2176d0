package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dannyphamv/labelpress/internal/core/printing"
)

func TestSettingsStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load missing file returns defaults", func(t *testing.T) {
		store := NewSettingsStore(filepath.Join(t.TempDir(), "settings.json"), zerolog.Nop())

		settings := store.Load(ctx)
		if settings.LastPrinter != "" {
			t.Errorf("got last printer %q, want empty", settings.LastPrinter)
		}
	})

	t.Run("save and load round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		store := NewSettingsStore(path, zerolog.Nop())

		if err := store.Save(ctx, printing.Settings{LastPrinter: "HP-1"}); err != nil {
			t.Fatalf("Save: %v", err)
		}

		// A fresh store simulates a process restart.
		reopened := NewSettingsStore(path, zerolog.Nop())
		settings := reopened.Load(ctx)
		if settings.LastPrinter != "HP-1" {
			t.Errorf("got last printer %q, want HP-1", settings.LastPrinter)
		}
	})

	t.Run("save creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
		store := NewSettingsStore(path, zerolog.Nop())

		if err := store.Save(ctx, printing.Settings{LastPrinter: "HP-1"}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("settings file not created: %v", err)
		}
	})

	t.Run("corrupt file returns defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("write corrupt file: %v", err)
		}

		store := NewSettingsStore(path, zerolog.Nop())
		settings := store.Load(ctx)
		if settings.LastPrinter != "" {
			t.Errorf("got last printer %q, want empty", settings.LastPrinter)
		}
	})
}

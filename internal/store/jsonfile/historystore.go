package jsonfile

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dannyphamv/labelpress/internal/core/history"
)

// HistoryStore implements history.Store using an append-only JSON lines
// file. Each Append writes and flushes one complete record, so a crash
// mid-write can only damage the final line, never prior entries.
type HistoryStore struct {
	path       string
	maxEntries int
	log        zerolog.Logger
	mu         sync.RWMutex
}

// NewHistoryStore creates a new JSON lines history store at the given path.
// maxEntries limits stored entries (0 means unlimited).
func NewHistoryStore(path string, maxEntries int, log zerolog.Logger) *HistoryStore {
	return &HistoryStore{path: path, maxEntries: maxEntries, log: log}
}

// Append adds a new entry at the end of the log.
func (s *HistoryStore) Append(ctx context.Context, entry history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal history entry: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open history file: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return fmt.Errorf("write history entry: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush history entry: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close history file: %w", err)
	}

	if s.maxEntries > 0 {
		return s.prune()
	}
	return nil
}

// List returns all entries in storage order, oldest first.
func (s *HistoryStore) List(ctx context.Context) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.load()
}

// ListByIDs returns the entries matching the given IDs, preserving
// storage order. Unknown IDs are skipped.
func (s *HistoryStore) ListByIDs(ctx context.Context, ids []string) ([]history.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	var matched []history.Entry
	for _, e := range entries {
		if want[e.ID] {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

// Clear removes all entries. Clearing an empty store is a no-op.
func (s *HistoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.replace(nil)
}

// load reads the history file from disk, skipping lines that fail to
// parse. History is advisory, so corruption degrades to fewer entries
// with a logged warning, never an error.
func (s *HistoryStore) load() ([]history.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var entries []history.Entry
	skipped := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var e history.Entry
		if err := json.Unmarshal(line, &e); err != nil {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan history file: %w", err)
	}

	if skipped > 0 {
		s.log.Warn().Int("skipped", skipped).Str("path", s.path).
			Msg("history file contains unreadable entries")
	}

	return entries, nil
}

// prune rewrites the log keeping only the newest maxEntries entries.
// The rewrite is atomic (temp + rename) so prior entries survive a crash.
func (s *HistoryStore) prune() error {
	entries, err := s.load()
	if err != nil {
		return err
	}
	if len(entries) <= s.maxEntries {
		return nil
	}

	return s.replace(entries[len(entries)-s.maxEntries:])
}

// replace atomically rewrites the whole log with the given entries.
func (s *HistoryStore) replace(entries []history.Entry) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create history directory: %w", err)
	}

	var buf bytes.Buffer
	for _, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal history entry: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write history temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename history file: %w", err)
	}

	return nil
}

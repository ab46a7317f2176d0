package history

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a history entry is not found.
var ErrNotFound = errors.New("history entry not found")

// Store defines persistence operations for print history.
//
// Entries are immutable once appended. Implementations keep them in
// insertion order; Clear is the only destructive operation.
type Store interface {
	// Append adds a new entry at the end of the log.
	Append(ctx context.Context, entry Entry) error
	// List returns all entries in storage order, oldest first.
	List(ctx context.Context) ([]Entry, error)
	// ListByIDs returns the entries matching the given IDs, preserving
	// storage order. Unknown IDs are skipped.
	ListByIDs(ctx context.Context, ids []string) ([]Entry, error)
	// Clear removes all entries. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

// Package null provides render-only stand-ins for hosts without a print
// subsystem. The orchestrator selects them once at startup based on
// capability probing.
package null

import (
	"context"
	"image"

	"github.com/dannyphamv/labelpress/internal/core/printing"
)

// Directory lists no printers.
type Directory struct{}

// List returns an empty printer list.
func (Directory) List(ctx context.Context) ([]string, error) { return nil, nil }

// Default returns no default printer.
func (Directory) Default(ctx context.Context) (string, error) { return "", nil }

// Sink rejects every job with printing.ErrUnsupported.
type Sink struct{}

// Print always fails; the orchestrator should not reach the sink when
// printing is unsupported.
func (Sink) Print(ctx context.Context, img image.Image, printer string) error {
	return printing.ErrUnsupported
}

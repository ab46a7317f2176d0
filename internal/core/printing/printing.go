// Package printing defines the printer directory and print sink contracts.
//
// Printers are referenced by name only. Names are resolved against the
// live directory at call time, never persisted as handles, so a stored
// name may refer to a printer that no longer exists.
package printing

import (
	"context"
	"image"
)

// Directory enumerates printers registered with the host.
type Directory interface {
	// List returns the available printer names in a stable order.
	// A host without a print subsystem yields an empty list, not an error.
	List(ctx context.Context) ([]string, error)
	// Default returns the system default printer name, or "" if none.
	Default(ctx context.Context) (string, error)
}

// Sink submits a rendered label to a named printer. The job is scaled to
// the printable area preserving aspect ratio and centered on the page.
//
// Print is the only call in the pipeline allowed to block for seconds.
type Sink interface {
	Print(ctx context.Context, img image.Image, printer string) error
}

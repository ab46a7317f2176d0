// Package cups talks to the host print subsystem through the CUPS
// command line tools (lp, lpstat).
package cups

import (
	"context"
	"strings"

	"github.com/dannyphamv/labelpress/pkg/executil"
)

// Directory lists printers known to CUPS via lpstat.
type Directory struct {
	lpstat string
	exec   executil.Executor
}

// NewDirectory creates a printer directory backed by the given lpstat binary.
func NewDirectory(lpstatPath string, exec executil.Executor) *Directory {
	return &Directory{lpstat: lpstatPath, exec: exec}
}

// List returns the names of all configured destinations. A host without
// a working print subsystem yields an empty list, not an error.
func (d *Directory) List(ctx context.Context) ([]string, error) {
	out, err := d.exec.Run(ctx, d.lpstat, "-e")
	if err != nil {
		// lpstat exits non-zero when no scheduler is running or no
		// destinations exist. Both are valid, displayable states.
		return nil, nil
	}

	var names []string
	for line := range strings.Lines(string(out)) {
		name := strings.TrimSpace(line)
		if name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}

// Default returns the system default destination, or "" if none is set.
func (d *Directory) Default(ctx context.Context) (string, error) {
	out, err := d.exec.Run(ctx, d.lpstat, "-d")
	if err != nil {
		return "", nil
	}

	// Expected form: "system default destination: <name>".
	// "no system default destination" means none is configured.
	line := strings.TrimSpace(string(out))
	if _, name, ok := strings.Cut(line, ":"); ok {
		return strings.TrimSpace(name), nil
	}

	return "", nil
}

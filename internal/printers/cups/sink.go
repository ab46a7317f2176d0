package cups

import (
	"context"
	"fmt"
	"image"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/core/printing"
	"github.com/dannyphamv/labelpress/pkg/executil"
)

// Sink submits rendered labels to CUPS via lp. The job is scaled to the
// printable area and centered by the fit-to-page option.
type Sink struct {
	lp   string
	dir  printing.Directory
	exec executil.Executor
	log  zerolog.Logger
}

// NewSink creates a print sink backed by the given lp binary. Printer
// names are resolved against dir at submission time.
func NewSink(lpPath string, dir printing.Directory, exec executil.Executor, log zerolog.Logger) *Sink {
	return &Sink{lp: lpPath, dir: dir, exec: exec, log: log}
}

// Print writes the label to a temp file and submits it with lp.
func (s *Sink) Print(ctx context.Context, img image.Image, printer string) error {
	names, err := s.dir.List(ctx)
	if err != nil {
		return fmt.Errorf("list printers: %w", err)
	}
	if !slices.Contains(names, printer) {
		return fmt.Errorf("%q: %w", printer, printing.ErrPrinterUnavailable)
	}

	f, err := os.CreateTemp("", "labelpress-*.png")
	if err != nil {
		return fmt.Errorf("create temp label file: %w", err)
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := label.WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp label file: %w", err)
	}

	s.log.Debug().Str("printer", printer).Str("file", f.Name()).Msg("submitting print job")

	out, err := s.exec.Run(ctx, s.lp, "-d", printer, "-o", "fit-to-page", f.Name())
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = err.Error()
		}
		return fmt.Errorf("%w: %s", printing.ErrJobFailed, detail)
	}

	return nil
}

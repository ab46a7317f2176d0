// Package press orchestrates the render, print, record pipeline.
package press

import (
	"context"
	"errors"
	"fmt"
	"image"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dannyphamv/labelpress/internal/core/config"
	"github.com/dannyphamv/labelpress/internal/core/history"
	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/core/printing"
)

// ErrEmptyText is returned when a submission contains no printable text.
var ErrEmptyText = errors.New("barcode text is empty")

// SubmitOptions configures a single label submission.
type SubmitOptions struct {
	Text       string // barcode payload
	Printer    string // explicit printer name (auto-resolved if empty)
	RenderOnly bool   // skip the print sink
}

// Result reports the outcome of one submission.
type Result struct {
	Entry   history.Entry
	Outcome history.Outcome
	Image   image.Image

	// PrintErr holds the sink failure for OutcomeFailed results.
	PrintErr error
	// RecordErr holds a history persistence failure. Losing one history
	// write must not block the operator, so it is surfaced separately
	// rather than failing the submission.
	RecordErr error
}

// Printers describes the selectable printer endpoints.
type Printers struct {
	Names    []string
	Default  string
	LastUsed string
}

// Service orchestrates labelpress operations. Submissions are serialized;
// one render/print/record cycle completes before the next begins.
type Service struct {
	directory printing.Directory
	sink      printing.Sink
	renderer  *label.Renderer
	history   history.Store
	settings  printing.SettingsStore
	config    *config.Config
	supported bool
	log       zerolog.Logger

	mu sync.Mutex
}

// New creates a new Service. supported reports whether the host has a
// usable print subsystem; when false every submission is render-only.
func New(
	dir printing.Directory,
	sink printing.Sink,
	renderer *label.Renderer,
	hist history.Store,
	settings printing.SettingsStore,
	cfg *config.Config,
	supported bool,
	log zerolog.Logger,
) *Service {
	return &Service{
		directory: dir,
		sink:      sink,
		renderer:  renderer,
		history:   hist,
		settings:  settings,
		config:    cfg,
		supported: supported,
		log:       log,
	}
}

// Supported reports whether the host can physically print.
func (s *Service) Supported() bool {
	return s.supported
}

// Submit validates, renders, prints, and records one label. Validation
// and encoding failures return an error and leave history untouched.
// Print failures are recorded and reported through the Result instead.
func (s *Service) Submit(ctx context.Context, opts SubmitOptions) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.submit(ctx, opts)
}

func (s *Service) submit(ctx context.Context, opts SubmitOptions) (Result, error) {
	if strings.TrimSpace(opts.Text) == "" {
		return Result{}, ErrEmptyText
	}

	img, err := s.renderer.Render(opts.Text)
	if err != nil {
		return Result{}, err
	}

	printer := opts.Printer
	if printer == "" {
		printer = s.resolvePrinter(ctx)
	}

	result := Result{Image: img}

	switch {
	case !s.supported || opts.RenderOnly:
		result.Outcome = history.OutcomeRenderOnly
	default:
		if err := s.sink.Print(ctx, img, printer); err != nil {
			s.log.Warn().Err(err).Str("printer", printer).Msg("print attempt failed")
			result.Outcome = history.OutcomeFailed
			result.PrintErr = err
		} else {
			s.log.Info().Str("printer", printer).Str("text", opts.Text).Msg("label printed")
			result.Outcome = history.OutcomePrinted
		}
	}

	entry := history.Entry{
		ID:        uuid.NewString(),
		Text:      opts.Text,
		Printer:   printer,
		Outcome:   result.Outcome,
		Timestamp: time.Now(),
	}
	if result.PrintErr != nil {
		entry.Error = result.PrintErr.Error()
	}

	if err := s.history.Append(ctx, entry); err != nil {
		s.log.Warn().Err(err).Msg("failed to record history entry")
		result.RecordErr = err
	}
	result.Entry = entry

	return result, nil
}

// Reprint re-renders and prints previously recorded entries, one Result
// per matched entry in storage order. Items are processed sequentially
// and failures are isolated; a failed item never aborts the rest. The
// batch stops between items if ctx is canceled.
func (s *Service) Reprint(ctx context.Context, ids []string, printer string) ([]Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(ids) == 0 {
		return nil, nil
	}

	entries, err := s.history.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load entries for reprint: %w", err)
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result, err := s.submit(ctx, SubmitOptions{Text: entry.Text, Printer: printer})
		if err != nil {
			// Stored text that no longer renders (or was recorded empty)
			// still yields a per-item result.
			result = Result{Outcome: history.OutcomeFailed, PrintErr: err}
			s.log.Warn().Err(err).Str("id", entry.ID).Msg("reprint item failed before printing")
		}
		results = append(results, result)
	}

	return results, nil
}

// SelectPrinter persists the given printer as the active selection.
func (s *Service) SelectPrinter(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("printer name is empty")
	}

	names, err := s.directory.List(ctx)
	if err != nil {
		return fmt.Errorf("list printers: %w", err)
	}
	if len(names) > 0 && !slices.Contains(names, name) {
		return fmt.Errorf("%q: %w", name, printing.ErrPrinterUnavailable)
	}

	settings := s.settings.Load(ctx)
	settings.LastPrinter = name
	if err := s.settings.Save(ctx, settings); err != nil {
		return fmt.Errorf("save printer selection: %w", err)
	}

	s.log.Info().Str("printer", name).Msg("printer selected")
	return nil
}

// Printers returns the live printer list together with the system
// default and the persisted last-used selection.
func (s *Service) Printers(ctx context.Context) (Printers, error) {
	names, err := s.directory.List(ctx)
	if err != nil {
		return Printers{}, fmt.Errorf("list printers: %w", err)
	}

	def, err := s.directory.Default(ctx)
	if err != nil {
		return Printers{}, fmt.Errorf("default printer: %w", err)
	}

	return Printers{
		Names:    names,
		Default:  def,
		LastUsed: s.settings.Load(ctx).LastPrinter,
	}, nil
}

// History returns all recorded entries in storage order, oldest first.
func (s *Service) History(ctx context.Context) ([]history.Entry, error) {
	return s.history.List(ctx)
}

// ClearHistory removes all recorded entries. Idempotent.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// resolvePrinter picks the printer for a submission with no explicit
// selection: the persisted last-used printer if still present, else the
// system default, else the first listed printer.
func (s *Service) resolvePrinter(ctx context.Context) string {
	names, err := s.directory.List(ctx)
	if err != nil || len(names) == 0 {
		return ""
	}

	if last := s.settings.Load(ctx).LastPrinter; last != "" && slices.Contains(names, last) {
		return last
	}

	if def, err := s.directory.Default(ctx); err == nil && def != "" {
		return def
	}

	return names[0]
}

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
	"github.com/dannyphamv/labelpress/internal/core/history"
)

type ReprintCmd struct {
	flags *Flags

	// Command-specific flags
	printer string
	all     bool
}

// NewReprintCmd creates a new reprint command
func NewReprintCmd(flags *Flags) *ReprintCmd {
	return &ReprintCmd{flags: flags}
}

// Register adds the reprint command to the application
func (cmd *ReprintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "reprint",
		Usage:     "Reprint previously recorded labels",
		UsageText: "labelpress reprint [options] <id>...",
		Description: `Re-renders and prints history entries by ID, in the order they were
originally recorded. Each entry is processed independently; one failure
does not stop the rest of the batch.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "printer",
				Aliases:     []string{"p"},
				Usage:       "printer to use (overrides the saved selection)",
				Destination: &cmd.printer,
			},
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "reprint every history entry",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ReprintCmd) run(ctx context.Context, c *cli.Command) error {
	p := console.Ctx(ctx)

	ids := c.Args().Slice()
	if cmd.all {
		entries, err := cmd.flags.Service.History(ctx)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		ids = make([]string, 0, len(entries))
		for _, e := range entries {
			ids = append(ids, e.ID)
		}
	}

	if len(ids) == 0 {
		p.Infof("Nothing to reprint")
		return nil
	}

	results, err := cmd.flags.Service.Reprint(ctx, ids, cmd.printer)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		p.Warnf("No history entries matched the given IDs")
		return nil
	}

	printed, failed := 0, 0
	for _, r := range results {
		switch r.Outcome {
		case history.OutcomePrinted:
			printed++
			p.Successf("Reprinted %q on %s", r.Entry.Text, r.Entry.Printer)
		case history.OutcomeRenderOnly:
			p.Infof("Rendered %q without printing", r.Entry.Text)
		case history.OutcomeFailed:
			failed++
			p.Errorf("Reprint failed: %v", r.PrintErr)
		}
		if r.RecordErr != nil {
			p.Warnf("History not updated: %v", r.RecordErr)
		}
	}

	if failed > 0 {
		p.Warnf("%d of %d reprint(s) failed", failed, len(results))
	}
	if printed > 0 {
		p.Successf("Reprinted %d label(s)", printed)
	}

	return nil
}

package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
	"github.com/dannyphamv/labelpress/internal/core/history"
)

type HistoryCmd struct {
	flags *Flags

	// Command-specific flags
	clear bool
	limit int
}

// NewHistoryCmd creates a new history command
func NewHistoryCmd(flags *Flags) *HistoryCmd {
	return &HistoryCmd{flags: flags}
}

// Register adds the history command to the application
func (cmd *HistoryCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "history",
		Usage:     "View or manage print history",
		UsageText: "labelpress history [options]",
		Description: `View or manage the history of printed labels.

By default, lists recorded print attempts with their IDs, outcome, and
timestamp, newest first. Use --clear to remove all entries.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "clear",
				Aliases:     []string{"c"},
				Usage:       "clear all print history",
				Destination: &cmd.clear,
			},
			&cli.IntFlag{
				Name:        "limit",
				Aliases:     []string{"n"},
				Usage:       "show at most this many entries (0 shows all)",
				Destination: &cmd.limit,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *HistoryCmd) run(ctx context.Context, c *cli.Command) error {
	p := console.Ctx(ctx)

	if cmd.clear {
		return cmd.runClear(ctx, p)
	}

	return cmd.runList(ctx, c)
}

func (cmd *HistoryCmd) runList(ctx context.Context, c *cli.Command) error {
	entries, err := cmd.flags.Service.History(ctx)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	if len(entries) == 0 {
		console.Ctx(ctx).Infof("No print history")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTEXT\tPRINTER\tSTATUS\tTIME")

	// Storage order is oldest first; display newest first.
	shown := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if cmd.limit > 0 && shown >= cmd.limit {
			break
		}
		e := entries[i]

		text := e.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			text,
			e.Printer,
			outcomeStatus(e),
			e.Timestamp.Format("2006-01-02 15:04:05"),
		)
		shown++
	}

	return w.Flush()
}

func (cmd *HistoryCmd) runClear(ctx context.Context, p *console.Console) error {
	if err := cmd.flags.Service.ClearHistory(ctx); err != nil {
		return err
	}

	p.Successf("Print history cleared")
	return nil
}

func outcomeStatus(e history.Entry) string {
	switch e.Outcome {
	case history.OutcomeFailed:
		return console.StatusFailed(string(e.Outcome))
	case history.OutcomeRenderOnly:
		return console.StatusWarn(string(e.Outcome))
	default:
		return console.StatusOK()
	}
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
	"github.com/dannyphamv/labelpress/internal/core/history"
	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/press"
)

type PrintCmd struct {
	flags *Flags

	// Command-specific flags
	printer    string
	renderOnly bool
	forcePrint bool
	output     string
}

// NewPrintCmd creates a new print command
func NewPrintCmd(flags *Flags) *PrintCmd {
	return &PrintCmd{flags: flags}
}

// Register adds the print command to the application
func (cmd *PrintCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "print",
		Usage:     "Render a barcode label and send it to a printer",
		UsageText: "labelpress print [options] <text>",
		Description: `Encodes the given text as a Code128 barcode, prints it on the selected
printer, and records the attempt in the print history.

Without --printer the persisted last-used printer is tried first, then the
system default, then the first available printer.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "printer",
				Aliases:     []string{"p"},
				Usage:       "printer to use (overrides the saved selection)",
				Destination: &cmd.printer,
			},
			&cli.BoolFlag{
				Name:        "render-only",
				Usage:       "render the label without printing",
				Destination: &cmd.renderOnly,
			},
			&cli.BoolFlag{
				Name:        "force-print",
				Usage:       "print even when auto_print is disabled in the config",
				Destination: &cmd.forcePrint,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "also write the rendered label PNG to this path",
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *PrintCmd) run(ctx context.Context, c *cli.Command) error {
	p := console.Ctx(ctx)

	text := strings.Join(c.Args().Slice(), " ")

	renderOnly := cmd.renderOnly
	if !cmd.flags.Config.AutoPrint && !cmd.forcePrint {
		renderOnly = true
	}

	result, err := cmd.flags.Service.Submit(ctx, press.SubmitOptions{
		Text:       text,
		Printer:    cmd.printer,
		RenderOnly: renderOnly,
	})
	if err != nil {
		return err
	}

	if cmd.output != "" {
		if err := writeLabelPNG(cmd.output, result); err != nil {
			return err
		}
		p.Infof("Label written to %s", cmd.output)
	}

	if result.RecordErr != nil {
		p.Warnf("History not updated: %v", result.RecordErr)
	}

	switch result.Outcome {
	case history.OutcomePrinted:
		p.Successf("Sent label to printer: %s", result.Entry.Printer)
	case history.OutcomeRenderOnly:
		if !cmd.flags.Service.Supported() {
			p.Warnf("No print subsystem available; label rendered only")
		} else {
			p.Infof("Label rendered without printing")
		}
	case history.OutcomeFailed:
		p.Errorf("Print failed, attempt recorded in history")
		return result.PrintErr
	}

	return nil
}

func writeLabelPNG(path string, result press.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	return label.WritePNG(f, result.Image)
}

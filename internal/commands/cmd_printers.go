package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
)

type PrintersCmd struct {
	flags *Flags
}

// NewPrintersCmd creates a new printers command
func NewPrintersCmd(flags *Flags) *PrintersCmd {
	return &PrintersCmd{flags: flags}
}

// Register adds the printers command to the application
func (cmd *PrintersCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "printers",
		Usage:       "List available printers",
		UsageText:   "labelpress printers",
		Description: "Displays the printers known to the host, marking the system default and the saved selection.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *PrintersCmd) run(ctx context.Context, c *cli.Command) error {
	p := console.Ctx(ctx)

	printers, err := cmd.flags.Service.Printers(ctx)
	if err != nil {
		return fmt.Errorf("list printers: %w", err)
	}

	if !cmd.flags.Service.Supported() {
		p.Warnf("No print subsystem available on this host")
		return nil
	}

	if len(printers.Names) == 0 {
		p.Infof("No printers found")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tDEFAULT\tSELECTED")

	for _, name := range printers.Names {
		def := ""
		if name == printers.Default {
			def = "yes"
		}
		sel := ""
		if name == printers.LastUsed {
			sel = "yes"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, def, sel)
	}

	return w.Flush()
}

package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
)

type UseCmd struct {
	flags *Flags
}

// NewUseCmd creates a new use command
func NewUseCmd(flags *Flags) *UseCmd {
	return &UseCmd{flags: flags}
}

// Register adds the use command to the application
func (cmd *UseCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "use",
		Usage:       "Select the printer for future print commands",
		UsageText:   "labelpress use <printer>",
		Description: "Persists the printer selection so later submissions default to it.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *UseCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one printer name. Run 'labelpress printers' to list them")
	}

	name := c.Args().First()
	if err := cmd.flags.Service.SelectPrinter(ctx, name); err != nil {
		return err
	}

	console.Ctx(ctx).Successf("Selected printer: %s", name)
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/console"
	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/press"
)

type RenderCmd struct {
	flags *Flags

	output string
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "render",
		Usage:       "Render a barcode label to a PNG file",
		UsageText:   "labelpress render -o <file.png> <text>",
		Description: "Renders the label image without printing and without touching the history.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "path of the PNG file to write",
				Required:    true,
				Destination: &cmd.output,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return press.ErrEmptyText
	}

	cfg := cmd.flags.Config
	renderer := label.NewRenderer(cfg.Label.Width, cfg.Label.Height, cfg.Label.Margin)

	img, err := renderer.Render(text)
	if err != nil {
		return err
	}

	f, err := os.Create(cmd.output)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	if err := label.WritePNG(f, img); err != nil {
		return err
	}

	console.Ctx(ctx).Successf("Label written to %s", cmd.output)
	return nil
}

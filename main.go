package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/dannyphamv/labelpress/internal/commands"
	"github.com/dannyphamv/labelpress/internal/console"
	"github.com/dannyphamv/labelpress/internal/core/config"
	"github.com/dannyphamv/labelpress/internal/core/label"
	"github.com/dannyphamv/labelpress/internal/core/printing"
	"github.com/dannyphamv/labelpress/internal/press"
	"github.com/dannyphamv/labelpress/internal/printers/cups"
	"github.com/dannyphamv/labelpress/internal/printers/null"
	"github.com/dannyphamv/labelpress/internal/store/jsonfile"
	"github.com/dannyphamv/labelpress/pkg/executil"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

func main() {
	if err := setupLogger("info", ""); err != nil {
		panic(err)
	}

	var (
		out   = console.New(os.Stderr)
		ctx   = console.NewContext(context.Background(), out)
		flags = &commands.Flags{Executor: &executil.RealExecutor{}}
	)

	app := &cli.Command{
		Name:      "labelpress",
		Usage:     "Print Code128 barcode labels and keep a reviewable history",
		UsageText: "labelpress [global options] command [command options]",
		Description: `Labelpress renders scanned or typed codes as Code128 barcode labels,
sends them to a printer, and records every attempt in a durable history.

Run 'labelpress print <text>' to print a label.
Run 'labelpress history' to review or reprint past labels.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("LABELPRESS_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (optional)",
				Sources:     cli.EnvVars("LABELPRESS_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("LABELPRESS_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("LABELPRESS_DATA_DIR"),
				Value:       commands.DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := setupLogger(flags.LogLevel, flags.LogFile); err != nil {
				return ctx, err
			}

			cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			flags.Service = buildService(cfg, flags.Executor)
			return ctx, nil
		},
	}

	app = commands.NewPrintCmd(flags).Register(app)
	app = commands.NewRenderCmd(flags).Register(app)
	app = commands.NewPrintersCmd(flags).Register(app)
	app = commands.NewUseCmd(flags).Register(app)
	app = commands.NewHistoryCmd(flags).Register(app)
	app = commands.NewReprintCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags).Register(app)

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Println()
		console.Ctx(ctx).FatalError(err)
		os.Exit(1)
	}
}

// buildService wires the stores, adapters, and renderer into the press
// service. The print subsystem is probed once here; hosts without one
// get the render-only adapters.
func buildService(cfg *config.Config, exec executil.Executor) *press.Service {
	var (
		logger   = log.With().Str("component", "press").Logger()
		hist     = jsonfile.NewHistoryStore(cfg.HistoryFile(), cfg.MaxHistory, log.With().Str("component", "history").Logger())
		settings = jsonfile.NewSettingsStore(cfg.SettingsFile(), log.With().Str("component", "settings").Logger())
		renderer = label.NewRenderer(cfg.Label.Width, cfg.Label.Height, cfg.Label.Margin)
	)

	var (
		dir  printing.Directory
		sink printing.Sink
	)

	supported := cups.Detect(cfg.Printing.LpPath, cfg.Printing.LpstatPath, exec)
	if supported {
		dir = cups.NewDirectory(cfg.Printing.LpstatPath, exec)
		sink = cups.NewSink(cfg.Printing.LpPath, dir, exec, log.With().Str("component", "cups").Logger())
	} else {
		dir = null.Directory{}
		sink = null.Sink{}
	}

	return press.New(dir, sink, renderer, hist, settings, cfg, supported, logger)
}

func setupLogger(level string, logFile string) error {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		// Create log directory if it doesn't exist
		logDir := filepath.Dir(logFile)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		// Open log file
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}

		// Write to both console and file
		output = io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stderr},
			file,
		)
	}

	log.Logger = log.Output(output).Level(parsedLevel)

	return nil
}

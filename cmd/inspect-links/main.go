package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/Swatinem/this-week-in-rust/internal"
	"github.com/Swatinem/this-week-in-rust/internal/apperr"
	pkgconfig "github.com/Swatinem/this-week-in-rust/pkg/config"
)

func run(ctx context.Context, cmd *cli.Command, extra ...internal.Option) error {
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(cmd.String("config"), cfg, cmd.IsSet("config")); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	// Flags override whatever the config file said.
	if cmd.IsSet("path") {
		cfg.Content.Path = cmd.String("path")
	}
	if cmd.IsSet("num-recent") {
		cfg.Content.NumRecent = int(cmd.Int("num-recent"))
	}
	if cmd.Bool("debug") {
		cfg.App.LogLevel = slog.LevelDebug
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := append([]internal.Option{internal.WithConfig(cfg)}, extra...)

	if err := internal.Run(ctx, opts...); err != nil {
		return err
	}

	return nil
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: "config/config.yaml",
			Value:       "config/config.yaml",
			Sources:     cli.EnvVars("TWIR_CONFIG_FILE"),
		},
		&cli.StringFlag{
			Name:    "path",
			Usage:   "Directory path to inspect",
			Sources: cli.EnvVars("TWIR_CONTENT_PATH"),
		},
		&cli.IntFlag{
			Name:  "num-recent",
			Usage: "Number of recent files to inspect",
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "inspect-links",
		Usage:  "Inspect recent this-week-in-rust issues for duplicate, malformed, and tracker-laden links",
		Action: func(ctx context.Context, cmd *cli.Command) error { return run(ctx, cmd) },
		Flags:  commonFlags(),
		Commands: []*cli.Command{
			{
				Name:   "watch",
				Usage:  "Re-run the inspection whenever a newsletter file changes",
				Flags:  commonFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error { return run(ctx, cmd, internal.WithWatch()) },
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, apperr.ErrWarningsFound) {
			// The warnings were already printed; the non-zero exit is the signal.
			os.Exit(1)
		}
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

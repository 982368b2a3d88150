// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Swatinem/this-week-in-rust/internal/apperr"
	"github.com/Swatinem/this-week-in-rust/internal/inspect"
	"github.com/Swatinem/this-week-in-rust/internal/report"
	"github.com/Swatinem/this-week-in-rust/internal/storage"
)

// Run executes a link inspection with the given options. A run that
// completes but accumulated warnings returns apperr.ErrWarningsFound after
// printing them; structural failures (no files, unreadable file) return
// their own errors before any report is printed.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{out: os.Stdout}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Structured diagnostics go to stderr; stdout is reserved for the report.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("content_path", cfg.Content.Path),
		slog.String("pattern", cfg.Content.Pattern),
		slog.Int("num_recent", cfg.Content.NumRecent),
		slog.String("log_level", cfg.App.LogLevel.String()))

	store, err := storage.NewFS(cfg.Content.Path)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	if app.watch {
		return runWatch(ctx, app, store, logger)
	}

	names, err := store.Recent(cfg.Content.Pattern, cfg.Content.NumRecent)
	if err != nil {
		return err
	}
	logger.Info("recent files", slog.Any("files", names))

	log := &report.Log{}
	if err := inspect.New(store, log, logger).Files(names); err != nil {
		return err
	}

	printReport(app.out, log)
	if !log.Empty() {
		return apperr.ErrWarningsFound
	}
	return nil
}

// printReport writes the run outcome in the fixed exit-contract format:
// a success line, or a header followed by one warning per line in the
// order they were recorded.
func printReport(w io.Writer, log *report.Log) {
	if log.Empty() {
		fmt.Fprintln(w, "everything is ok!")
		return
	}
	fmt.Fprintln(w, "warnings exist:")
	for _, warn := range log.Warnings() {
		fmt.Fprintln(w, warn)
	}
}

// runWatch re-inspects on content changes until a shutdown signal arrives.
// Every pass gets a fresh warning log and prints its own report; a clean
// shutdown exits zero regardless of what the passes found.
func runWatch(ctx context.Context, app *application, store *storage.FS, logger *slog.Logger) error {
	cfg := app.config

	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		return inspect.Watch(watchCtx, store, cfg.Content.Pattern, cfg.Content.NumRecent, logger, func(names []string) {
			log := &report.Log{}
			if err := inspect.New(store, log, logger).Files(names); err != nil {
				logger.Error("inspection failed", slog.String("error", err.Error()))
				return
			}
			printReport(app.out, log)
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
		}
		cancel()
		return nil
	})

	return g.Wait()
}

package inspect

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/Swatinem/this-week-in-rust/internal/checksum"
	"github.com/Swatinem/this-week-in-rust/internal/storage"
)

// PassFunc runs one inspection pass over the current matching file set.
type PassFunc func(names []string)

// Watch starts an fsnotify watcher on the content directory and re-runs a
// full inspection pass whenever a matching newsletter file changes, until
// ctx is cancelled. Events are debounced, and a pass is skipped when the
// matched file set hashes to the same digest as the previous pass.
//
// An initial pass runs on startup so the watcher never sits silent on
// stale content.
func Watch(ctx context.Context, store *storage.FS, pattern string, count int, logger *slog.Logger, pass PassFunc) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(store.Root()); err != nil {
		return err
	}
	logger.Info("watcher: started", slog.String("root", store.Root()))

	// debounceTimer coalesces bursts of write events into one pass.
	var debounceTimer *time.Timer
	var debounceCh <-chan time.Time

	schedule := func() {
		if debounceTimer == nil {
			debounceTimer = time.NewTimer(200 * time.Millisecond)
			debounceCh = debounceTimer.C
		} else {
			debounceTimer.Reset(200 * time.Millisecond)
		}
	}

	var lastDigest string

	runPass := func() {
		names, listErr := store.Recent(pattern, count)
		if listErr != nil {
			logger.Warn("watcher: list failed", slog.String("error", listErr.Error()))
			return
		}
		entries := make([]checksum.Entry, 0, len(names))
		for _, name := range names {
			data, readErr := store.Read(name)
			if readErr != nil {
				logger.Warn("watcher: read failed", slog.String("file", name), slog.String("error", readErr.Error()))
				return
			}
			entries = append(entries, checksum.Entry{Name: name, Data: data})
		}
		digest := checksum.Set(entries)
		if digest == lastDigest {
			logger.Debug("watcher: content unchanged, skipping pass")
			return
		}
		lastDigest = digest
		pass(names)
	}

	runPass()

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-debounceCh:
			runPass()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(ev.Name)
			if matched, matchErr := doublestar.Match(pattern, name); matchErr != nil || !matched {
				continue
			}
			logger.Debug("watcher: change", slog.String("file", name), slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

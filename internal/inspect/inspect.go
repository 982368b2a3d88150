// Package inspect implements the link-hygiene pass over newsletter files:
// each file is rendered to HTML, its strict-section links are extracted
// and normalized, and links recurring across files are flagged.
package inspect

import (
	"fmt"
	"log/slog"

	"github.com/Swatinem/this-week-in-rust/internal/report"
	"github.com/Swatinem/this-week-in-rust/internal/storage"
	"github.com/Swatinem/this-week-in-rust/internal/urlnorm"
)

// Inspector runs the link-hygiene pass over a set of newsletter files,
// accumulating anomalies into a shared report.Log.
type Inspector struct {
	store  *storage.FS
	log    *report.Log
	norm   *urlnorm.Normalizer
	logger *slog.Logger
}

// New creates an Inspector recording warnings into log.
func New(store *storage.FS, log *report.Log, logger *slog.Logger) *Inspector {
	return &Inspector{
		store:  store,
		log:    log,
		norm:   urlnorm.New(log),
		logger: logger,
	}
}

// File inspects a single newsletter file and returns the normalized links
// found in its strict sections. Read and render failures are fatal; link
// anomalies only append warnings.
func (ins *Inspector) File(name string) ([]string, error) {
	ins.logger.Info("inspecting file", slog.String("file", name))
	data, err := ins.store.Read(name)
	if err != nil {
		return nil, err
	}
	elems, err := renderElements(data)
	if err != nil {
		return nil, fmt.Errorf("inspect %s: %w", name, err)
	}
	links := extractLinks(elems, ins.norm)
	ins.logger.Debug("extracted links", slog.String("file", name), slog.Int("count", len(links)))
	return links, nil
}

// Files inspects the given files in order, flagging links that repeat
// across them.
func (ins *Inspector) Files(names []string) error {
	tracker := NewTracker(ins.log)
	for _, name := range names {
		links, err := ins.File(name)
		if err != nil {
			return err
		}
		tracker.Record(name, links)
	}
	return nil
}

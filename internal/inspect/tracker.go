package inspect

import "github.com/Swatinem/this-week-in-rust/internal/report"

// Tracker flags normalized links that recur across files. The file a link
// was first seen in is retained for every later collision message.
type Tracker struct {
	firstSeen map[string]string
	log       *report.Log
}

// NewTracker creates an empty Tracker recording warnings into log.
func NewTracker(log *report.Log) *Tracker {
	return &Tracker{firstSeen: make(map[string]string), log: log}
}

// Record registers a file's links, warning on every collision with a
// previously seen link. Collisions do not replace the stored first-seen
// file, and repeated collisions warn repeatedly.
func (t *Tracker) Record(file string, links []string) {
	for _, link := range links {
		if prev, ok := t.firstSeen[link]; ok {
			t.log.Warnf("possible duplicate link %s in file %s (also found in %s", link, file, prev)
			continue
		}
		t.firstSeen[link] = file
	}
}

// Package report accumulates link-hygiene warnings during an inspection run.
package report

import "fmt"

// Log collects warnings in the order they were recorded. It replaces the
// usual "print as you go" approach so a run can finish scanning every file
// and surface all findings together at the end. The zero value is ready to
// use. A Log is not safe for concurrent use; inspection is single-threaded.
type Log struct {
	warnings []string
}

// Warnf records a formatted warning.
func (l *Log) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the recorded warnings in insertion order.
func (l *Log) Warnings() []string {
	return l.warnings
}

// Empty reports whether no warnings have been recorded.
func (l *Log) Empty() bool {
	return len(l.warnings) == 0
}

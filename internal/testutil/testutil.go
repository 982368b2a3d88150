// Package testutil provides shared test helpers for setting up content directories.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Swatinem/this-week-in-rust/internal/storage"
)

// TestContentDir creates a temporary content directory with a storage.FS.
func TestContentDir(t *testing.T) (string, *storage.FS) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// WriteIssue writes a newsletter file with the canonical date-based name
// for the given date and returns the file name.
func WriteIssue(t *testing.T, dir, date, markdown string) string {
	t.Helper()
	name := date + "-this-week-in-rust.md"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(markdown), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

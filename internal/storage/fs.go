// Package storage reads newsletter source files from the content directory.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Swatinem/this-week-in-rust/internal/apperr"
)

// FS provides read-only access to a content directory on the local file
// system. Issue files live flat in the directory root, named by date.
type FS struct {
	root string // absolute path to the content directory
}

// NewFS creates a new FS rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute path of the content directory.
func (f *FS) Root() string {
	return f.root
}

// safePath resolves a relative path against the content root and rejects
// any result that escapes it (directory traversal).
func (f *FS) safePath(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(rel)
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("storage: absolute paths not allowed: %s", rel)
	}
	joined := filepath.Join(f.root, cleaned)
	abs, err := filepath.Abs(joined)
	if err != nil {
		return "", fmt.Errorf("storage: resolve path: %w", err)
	}
	// Ensure the resolved path is still under root.
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("storage: path escapes content root: %s", rel)
	}
	return abs, nil
}

// Recent returns the count lexicographically-last file names matching the
// glob pattern. The newsletter naming scheme prefixes every file with its
// date, so lexicographic order is chronological and the tail of the sorted
// listing holds the most recent issues. Names are relative to the root and
// returned in ascending order.
//
// An empty directory and a directory with no matching names are distinct
// fatal errors, wrapping apperr.ErrNoFiles and apperr.ErrNoMatch.
func (f *FS) Recent(pattern string, count int) ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("storage: read dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("storage: %w in %s", apperr.ErrNoFiles, f.root)
	}

	var matched []string
	for _, name := range names {
		ok, matchErr := doublestar.Match(pattern, name)
		if matchErr != nil {
			return nil, fmt.Errorf("storage: match pattern %q: %w", pattern, matchErr)
		}
		if ok {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("storage: %w in %s", apperr.ErrNoMatch, f.root)
	}

	slices.Sort(matched)
	if count < len(matched) {
		matched = matched[len(matched)-count:]
	}
	return matched, nil
}

// Read returns the raw bytes of a content file.
func (f *FS) Read(name string) ([]byte, error) {
	abs, err := f.safePath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

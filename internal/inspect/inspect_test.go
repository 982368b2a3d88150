package inspect

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Swatinem/this-week-in-rust/internal/report"
	"github.com/Swatinem/this-week-in-rust/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestInspector_File_ExtractsStrictLinks(t *testing.T) {
	dir, store := testutil.TestContentDir(t)
	name := testutil.WriteIssue(t, dir, "2024-01-05", strings.Join([]string{
		"## Miscellaneous",
		"",
		"* [a](https://example.com/a)",
		"* [b](https://example.com/b?utm_source=x)",
		"",
	}, "\n"))

	log := &report.Log{}
	links, err := New(store, log, discardLogger()).File(name)
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if len(links) != 2 || links[0] != "https://example.com/a" || links[1] != "https://example.com/b" {
		t.Errorf("links = %v", links)
	}
	if len(log.Warnings()) != 2 {
		t.Errorf("warnings = %v", log.Warnings())
	}
}

func TestInspector_File_Missing(t *testing.T) {
	_, store := testutil.TestContentDir(t)
	log := &report.Log{}
	if _, err := New(store, log, discardLogger()).File("2024-01-05-this-week-in-rust.md"); err == nil {
		t.Error("expected error for missing file")
	}
	if !log.Empty() {
		t.Errorf("fatal errors must not leave warnings: %v", log.Warnings())
	}
}

func TestInspector_Files_DuplicateAcrossIssues(t *testing.T) {
	dir, store := testutil.TestContentDir(t)
	issue := func(date string) string {
		return testutil.WriteIssue(t, dir, date, strings.Join([]string{
			"## Miscellaneous",
			"",
			"* [same](https://example.com/same)",
			"",
		}, "\n"))
	}
	a := issue("2024-01-05")
	b := issue("2024-01-12")

	log := &report.Log{}
	if err := New(store, log, discardLogger()).Files([]string{a, b}); err != nil {
		t.Fatalf("Files: %v", err)
	}
	warns := log.Warnings()
	if len(warns) != 1 {
		t.Fatalf("warnings = %v, want 1", warns)
	}
	if !strings.Contains(warns[0], "possible duplicate link https://example.com/same in file "+b) {
		t.Errorf("warning = %q", warns[0])
	}
	if !strings.Contains(warns[0], "also found in "+a) {
		t.Errorf("warning = %q", warns[0])
	}
}

func TestInspector_Files_BoilerplateRepeatsIgnored(t *testing.T) {
	dir, store := testutil.TestContentDir(t)
	issue := func(date string) string {
		return testutil.WriteIssue(t, dir, date, strings.Join([]string{
			"## Crate of the Week",
			"",
			"Follow us on [twitter](https://twitter.com/thisweekinrust).",
			"",
		}, "\n"))
	}
	a := issue("2024-01-05")
	b := issue("2024-01-12")

	log := &report.Log{}
	if err := New(store, log, discardLogger()).Files([]string{a, b}); err != nil {
		t.Fatalf("Files: %v", err)
	}
	if !log.Empty() {
		t.Errorf("boilerplate repeats must not warn: %v", log.Warnings())
	}
}

func TestInspector_Files_MalformedLinkStillTracked(t *testing.T) {
	dir, store := testutil.TestContentDir(t)
	issue := func(date string) string {
		return testutil.WriteIssue(t, dir, date, strings.Join([]string{
			"## Rust Walkthroughs",
			"",
			"* [mirror](ftp://example.com/file)",
			"",
		}, "\n"))
	}
	a := issue("2024-01-05")
	b := issue("2024-01-12")

	log := &report.Log{}
	if err := New(store, log, discardLogger()).Files([]string{a, b}); err != nil {
		t.Fatalf("Files: %v", err)
	}
	warns := log.Warnings()
	// One malformed warning per file, then the duplicate collision.
	if len(warns) != 3 {
		t.Fatalf("warnings = %v, want 3", warns)
	}
	if !strings.Contains(warns[0], "possibly malformed link") ||
		!strings.Contains(warns[1], "possibly malformed link") {
		t.Errorf("warnings = %v", warns)
	}
	if !strings.Contains(warns[2], "possible duplicate link ftp://example.com/file") {
		t.Errorf("warnings[2] = %q", warns[2])
	}
}

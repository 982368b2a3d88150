package apperr

import "errors"

var (
	// ErrNoFiles means the content directory contains no files at all.
	ErrNoFiles = errors.New("no files found")
	// ErrNoMatch means no file name matched the newsletter pattern.
	ErrNoMatch = errors.New("no matching files found")
	// ErrWarningsFound signals a completed run that accumulated warnings.
	// The caller maps it to exit code 1 after the report has been printed.
	ErrWarningsFound = errors.New("warnings found")
)

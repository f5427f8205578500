package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrMissingColumns indicates the source header lacks a required column
	ErrMissingColumns = errors.New("required columns are missing")

	// ErrEmptySource indicates the source has no header row
	ErrEmptySource = errors.New("source contains no data")
)

// DataLoadError is a fatal failure to produce the catalog table: the source
// is missing, unreadable, or structurally unusable. Malformed individual
// rows never produce one; they degrade per-row instead.
type DataLoadError struct {
	Path   string // Source file path ("" for in-memory sources)
	Reason string // Short description of what went wrong
	Err    error  // Underlying cause, if any
}

func (e *DataLoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("loading catalog from %s: %s", e.Path, e.Reason)
	}
	return "loading catalog: " + e.Reason
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

package tui

import (
	"github.com/catalens/catalens/internal/catalog"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// CatalogLoadedMsg signals that the catalog table is ready
type CatalogLoadedMsg struct {
	Table *catalog.Table
}

// TickMsg drives the loading spinner
type TickMsg struct{}

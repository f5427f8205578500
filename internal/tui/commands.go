package tui

import (
	"time"

	"github.com/catalens/catalens/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Command factories for async operations

// LoadCatalogCmd loads the catalog table off the UI goroutine
func LoadCatalogCmd(svc *service.CatalogService) tea.Cmd {
	return func() tea.Msg {
		table, err := svc.Load()
		if err != nil {
			return ErrMsg{Err: err, Context: "loading catalog"}
		}
		return CatalogLoadedMsg{Table: table}
	}
}

// TickCmd emits a TickMsg after the given interval
func TickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

package tui

import (
	"strings"
	"time"

	"github.com/catalens/catalens/internal/catalog"
	"github.com/catalens/catalens/internal/config"
	"github.com/catalens/catalens/internal/search"
	"github.com/catalens/catalens/internal/service"
	"github.com/catalens/catalens/internal/tui/components"
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLoading ApplicationState = iota
	StateBrowsing
	StateSearching
	StateHelp
	StateError
)

// Layout constants
const (
	sidebarWidth = 28
	chromeHeight = 2 // Header + footer lines

	minTopGenres = 5
	maxTopGenres = 20

	maxSearchResults = 50
)

// Model is the main Bubble Tea model for the dashboard
type Model struct {
	State ApplicationState
	Ready bool

	CatalogSvc *service.CatalogService
	Table      *catalog.Table

	Sidebar components.Sidebar
	Omnibar components.Omnibar
	keys    KeyMap

	// Dimensions
	Width  int
	Height int

	// View state
	SpinnerFrame   int
	TopGenres      int  // Genre chart size, the original's slider
	TopDirectors   int  // Directors chart size
	ExcludeUnknown bool // Drop the "Unknown" director sentinel
	contentScroll  int

	Err error

	// Search corpus, built once when the table arrives
	titles    []string
	titleMeta []components.SearchResult
}

// NewModel creates a new application model
func NewModel(catalogSvc *service.CatalogService, cfg *config.Config) Model {
	sidebar := components.NewSidebar()
	sidebar.Select(components.SectionByName(cfg.UI.DefaultView))
	sidebar.SetFocused(true)

	topGenres := cfg.UI.TopGenres
	if topGenres < minTopGenres || topGenres > maxTopGenres {
		topGenres = 10
	}
	topDirectors := cfg.UI.TopDirectors
	if topDirectors <= 0 {
		topDirectors = 15
	}

	return Model{
		State:          StateLoading,
		CatalogSvc:     catalogSvc,
		Sidebar:        sidebar,
		Omnibar:        components.NewOmnibar(),
		keys:           DefaultKeyMap(),
		TopGenres:      topGenres,
		TopDirectors:   topDirectors,
		ExcludeUnknown: true,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadCatalogCmd(m.CatalogSvc),
		TickCmd(100*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Sidebar.SetSize(sidebarWidth, m.Height-chromeHeight)
		m.Omnibar.SetSize(m.Width, m.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		if m.State != StateLoading {
			return m, nil
		}
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case CatalogLoadedMsg:
		m.Table = msg.Table
		m.buildSearchCorpus()
		m.State = StateBrowsing
		return m, nil

	case ErrMsg:
		m.Err = msg
		m.State = StateError
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.State {
	case StateSearching:
		return m.handleSearchKeys(msg)

	case StateHelp:
		m.State = StateBrowsing
		return m, nil

	case StateError:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case StateLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	// StateBrowsing
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.State = StateSearching
		m.Omnibar.Show()
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		focusSidebar := m.Sidebar.IsFocused()
		if key.Matches(msg, m.keys.Tab) {
			focusSidebar = !focusSidebar
		} else {
			focusSidebar = key.Matches(msg, m.keys.Left)
		}
		m.Sidebar.SetFocused(focusSidebar)
		return m, nil

	case key.Matches(msg, m.keys.Increase):
		if m.Sidebar.Selected() == components.SectionContent && m.TopGenres < maxTopGenres {
			m.TopGenres++
		}
		return m, nil

	case key.Matches(msg, m.keys.Decrease):
		if m.Sidebar.Selected() == components.SectionContent && m.TopGenres > minTopGenres {
			m.TopGenres--
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleUnknown):
		if m.Sidebar.Selected() == components.SectionDirectors {
			m.ExcludeUnknown = !m.ExcludeUnknown
		}
		return m, nil
	}

	if m.Sidebar.IsFocused() {
		prev := m.Sidebar.Selected()
		var cmd tea.Cmd
		m.Sidebar, cmd = m.Sidebar.Update(msg)
		if m.Sidebar.Selected() != prev {
			m.contentScroll = 0
		}
		return m, cmd
	}

	// Main panel focused: j/k scroll the charts
	switch {
	case key.Matches(msg, m.keys.Down):
		m.contentScroll++
	case key.Matches(msg, m.keys.Up):
		if m.contentScroll > 0 {
			m.contentScroll--
		}
	}
	return m, nil
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.Omnibar.Hide()
		m.State = StateBrowsing
		return m, nil
	}

	var cmd tea.Cmd
	m.Omnibar, cmd = m.Omnibar.Update(msg)
	if m.Omnibar.QueryChanged() {
		m.Omnibar.SetResults(m.searchTitles(m.Omnibar.Query()))
	}
	return m, cmd
}

// buildSearchCorpus flattens the table into the slices the omnibar searches
func (m *Model) buildSearchCorpus() {
	records := m.Table.Records()
	m.titles = make([]string, len(records))
	m.titleMeta = make([]components.SearchResult, len(records))
	for i := range records {
		m.titles[i] = records[i].Title
		m.titleMeta[i] = components.SearchResult{
			Title: records[i].Title,
			Type:  records[i].Type,
			Year:  records[i].YearAdded,
		}
	}
}

func (m Model) searchTitles(query string) []components.SearchResult {
	matches := search.Search(query, m.titles)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	results := make([]components.SearchResult, len(matches))
	for i, match := range matches {
		r := m.titleMeta[match.Index]
		r.MatchedIndexes = match.MatchedIndexes
		results[i] = r
	}
	return results
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "initializing..."
	}

	switch m.State {
	case StateLoading:
		spinner := styles.SpinnerStyle.Render(styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)])
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			spinner+" Loading catalog...")

	case StateError:
		msg := styles.ErrorStyle.Render("Error: "+m.Err.Error()) + "\n\n" +
			styles.DimStyle.Render("press q to quit")
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, msg)

	case StateHelp:
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			m.renderHelp())
	}

	header := m.renderHeader()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.Sidebar.View(), m.renderMainPanel())
	footer := m.renderFooter()
	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m.State == StateSearching {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
			m.Omnibar.View())
	}
	return view
}

func (m Model) renderHeader() string {
	title := styles.HeaderStyle.Render(" CATALENS ") +
		styles.SubtitleStyle.Render(" media catalog analytics")
	return title
}

func (m Model) renderFooter() string {
	hints := []string{
		m.renderHint("tab", "focus"),
		m.renderHint("j/k", "navigate"),
		m.renderHint("/", "search"),
		m.renderHint("?", "help"),
		m.renderHint("q", "quit"),
	}
	return " " + strings.Join(hints, "  ")
}

func (m Model) renderHint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + " " + styles.HelpDescStyle.Render(desc)
}

// renderMainPanel renders the active analysis section with scrolling
func (m Model) renderMainPanel() string {
	width := m.Width - sidebarWidth
	height := m.Height - chromeHeight

	style := styles.InactiveBorder
	if !m.Sidebar.IsFocused() {
		style = styles.ActiveBorder
	}
	frameW, frameH := style.GetFrameSize()
	innerWidth := width - frameW - 2
	innerHeight := height - frameH

	content := m.renderSection(innerWidth)
	lines := strings.Split(content, "\n")

	// Clamp scroll so the last page stays full
	maxScroll := len(lines) - innerHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	scroll := m.contentScroll
	if scroll > maxScroll {
		scroll = maxScroll
	}
	if scroll < len(lines) {
		lines = lines[scroll:]
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(width - frameW).
		Height(height - frameH).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderHelp() string {
	rows := [][2]string{
		{"j/k", "move within the menu or scroll charts"},
		{"tab, h/l", "switch focus between menu and charts"},
		{"+/-", "adjust the genre chart size"},
		{"u", "include or exclude the Unknown director"},
		{"/", "fuzzy title search"},
		{"esc", "close a modal"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("Keyboard Shortcuts"))
	for _, row := range rows {
		b.WriteByte('\n')
		b.WriteString(styles.HelpKeyStyle.Render(styles.PadRight(row[0], 10)))
		b.WriteString(styles.HelpDescStyle.Render(row[1]))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.DimStyle.Render("press any key to return"))
	return styles.ModalStyle.Render(b.String())
}

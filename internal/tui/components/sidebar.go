package components

import (
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Section identifies an analysis section of the dashboard
type Section int

const (
	SectionOverview Section = iota
	SectionContent
	SectionTrends
	SectionDirectors
	SectionWordCloud
)

// String returns the menu label for the section
func (s Section) String() string {
	switch s {
	case SectionOverview:
		return "Overview"
	case SectionContent:
		return "Content Analysis"
	case SectionTrends:
		return "Trends Over Time"
	case SectionDirectors:
		return "Directors & Creators"
	case SectionWordCloud:
		return "Word Clouds"
	default:
		return "Unknown"
	}
}

// Sections lists every section in menu order
var Sections = []Section{
	SectionOverview,
	SectionContent,
	SectionTrends,
	SectionDirectors,
	SectionWordCloud,
}

// SectionByName resolves a config default_view value ("overview", ...)
func SectionByName(name string) Section {
	switch name {
	case "content":
		return SectionContent
	case "trends":
		return SectionTrends
	case "directors":
		return SectionDirectors
	case "wordcloud":
		return SectionWordCloud
	default:
		return SectionOverview
	}
}

// sectionItem implements list.Item for sections
type sectionItem struct {
	section Section
}

func (i sectionItem) FilterValue() string { return i.section.String() }
func (i sectionItem) Title() string       { return i.section.String() }
func (i sectionItem) Description() string { return "" }

// Border overhead for the sidebar panel
const borderSize = 2

// Sidebar is the analysis section menu
type Sidebar struct {
	list    list.Model
	focused bool
	width   int
	height  int
}

// NewSidebar creates a new sidebar component
func NewSidebar() Sidebar {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(styles.White).
		Background(styles.SlateLight).
		Padding(0, 1)
	delegate.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Padding(0, 1)

	items := make([]list.Item, len(Sections))
	for i, s := range Sections {
		items[i] = sectionItem{section: s}
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = "Analysis"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(styles.NetflixRed).
		Bold(true).
		Padding(0, 1)

	return Sidebar{list: l}
}

// Selected returns the currently selected section
func (s Sidebar) Selected() Section {
	item := s.list.SelectedItem()
	if item == nil {
		return SectionOverview
	}
	return item.(sectionItem).section
}

// Select moves the cursor to the given section
func (s *Sidebar) Select(section Section) {
	for i, sec := range Sections {
		if sec == section {
			s.list.Select(i)
			return
		}
	}
}

// SetSize updates the component dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.list.SetSize(width-borderSize, height-borderSize)
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s Sidebar) IsFocused() bool {
	return s.focused
}

// Update handles messages
func (s Sidebar) Update(msg tea.Msg) (Sidebar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			s.list.CursorDown()
		case "k", "up":
			s.list.CursorUp()
		case "g":
			s.list.Select(0)
		case "G":
			s.list.Select(len(s.list.Items()) - 1)
		}
	}

	return s, nil
}

// View renders the component
func (s Sidebar) View() string {
	style := styles.InactiveBorder
	if s.focused {
		style = styles.ActiveBorder
	}

	frameW, frameH := style.GetFrameSize()

	return style.
		Width(s.width - frameW).
		Height(s.height - frameH).
		Render(s.list.View())
}

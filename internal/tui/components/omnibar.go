package components

import (
	"fmt"
	"strings"

	"github.com/catalens/catalens/internal/domain"
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchResult is one title hit shown in the omnibar
type SearchResult struct {
	Title          string
	Type           domain.TitleType
	Year           int // YearAdded, 0 when undefined
	MatchedIndexes []int
}

const maxVisibleResults = 12

// Omnibar is the fuzzy title search modal
type Omnibar struct {
	input     textinput.Model
	results   []SearchResult
	cursor    int
	visible   bool
	width     int
	height    int
	prevQuery string // Track query changes for live filtering
}

// NewOmnibar creates a new omnibar component
func NewOmnibar() Omnibar {
	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return Omnibar{input: ti}
}

// Show makes the omnibar visible and focuses the input
func (o *Omnibar) Show() {
	o.visible = true
	o.input.Focus()
	o.input.SetValue("")
	o.results = nil
	o.cursor = 0
	o.prevQuery = ""
}

// Hide hides the omnibar
func (o *Omnibar) Hide() {
	o.visible = false
	o.input.Blur()
}

// IsVisible returns true if the omnibar is visible
func (o Omnibar) IsVisible() bool {
	return o.visible
}

// SetResults sets the search results
func (o *Omnibar) SetResults(results []SearchResult) {
	o.results = results
	o.cursor = 0
}

// SetSize updates the component dimensions
func (o *Omnibar) SetSize(width, height int) {
	o.width = width
	o.height = height
	o.input.Width = width/2 - 10
}

// Query returns the current search query
func (o Omnibar) Query() string {
	return o.input.Value()
}

// QueryChanged reports whether the query changed since the last check
func (o *Omnibar) QueryChanged() bool {
	current := o.input.Value()
	if current != o.prevQuery {
		o.prevQuery = current
		return true
	}
	return false
}

// Update handles messages
func (o Omnibar) Update(msg tea.Msg) (Omnibar, tea.Cmd) {
	if !o.visible {
		return o, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "ctrl+n":
			if o.cursor < len(o.results)-1 {
				o.cursor++
			}
			return o, nil
		case "up", "ctrl+p":
			if o.cursor > 0 {
				o.cursor--
			}
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd
}

// View renders the omnibar modal
func (o Omnibar) View() string {
	var b strings.Builder

	b.WriteString(styles.ModalTitleStyle.Render("Title Search"))
	b.WriteByte('\n')
	b.WriteString(o.input.View())
	b.WriteString("\n\n")

	if len(o.results) == 0 {
		if o.input.Value() != "" {
			b.WriteString(styles.DimStyle.Render("no matches"))
		} else {
			b.WriteString(styles.DimStyle.Render("type to search"))
		}
	}

	visible := o.results
	if len(visible) > maxVisibleResults {
		visible = visible[:maxVisibleResults]
	}
	for i, r := range visible {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(o.renderResult(r, i == o.cursor))
	}
	if extra := len(o.results) - len(visible); extra > 0 {
		b.WriteByte('\n')
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("... %d more", extra)))
	}

	return styles.ModalStyle.Width(o.width / 2).Render(b.String())
}

// renderResult highlights the matched runes within a result line
func (o Omnibar) renderResult(r SearchResult, selected bool) string {
	matched := make(map[int]bool, len(r.MatchedIndexes))
	for _, idx := range r.MatchedIndexes {
		matched[idx] = true
	}

	highlight := styles.MatchHighlightStyle
	normal := lipgloss.NewStyle().Foreground(styles.LightGray)
	if selected {
		highlight = styles.MatchHighlightSelectedStyle
		normal = lipgloss.NewStyle().Foreground(styles.White).Background(styles.SlateLight)
	}

	var line strings.Builder
	for i, rn := range []rune(r.Title) {
		if matched[i] {
			line.WriteString(highlight.Render(string(rn)))
		} else {
			line.WriteString(normal.Render(string(rn)))
		}
	}

	meta := r.Type.String()
	if r.Year > 0 {
		meta = fmt.Sprintf("%s · %d", meta, r.Year)
	}
	return line.String() + " " + styles.DimStyle.Render("("+meta+")")
}

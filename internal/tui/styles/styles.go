package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	NetflixRed = lipgloss.Color("#E50914")
	Charcoal   = lipgloss.Color("#221F1F")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
	Blue       = lipgloss.Color("#3B82F6")
	Amber      = lipgloss.Color("#F59E0B")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(NetflixRed)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(NetflixRed).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Metric card styles for the overview section
var (
	MetricCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SlateLight).
			Padding(0, 2)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(NetflixRed).
				Bold(true)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(LightGray)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(NetflixRed).
			Padding(1, 2).
			Background(SlateDark)

	ModalTitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true).
			MarginBottom(1)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Chart styles
var (
	BarStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	BarAltStyle = lipgloss.NewStyle().
			Foreground(Blue)

	BarDimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	ChartLabelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	ChartCountStyle = lipgloss.NewStyle().
			Foreground(White)
)

// Match highlight styles for search results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(NetflixRed).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(NetflixRed).
					Background(SlateLight).
					Bold(true)
)

// Spinner
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(NetflixRed)

	SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
)

// Helper functions

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// PadLeft right-aligns a string within width
func PadLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	return spaces(width-len(runes)) + s
}

// PadRight left-aligns a string within width
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	return s + spaces(width-len(runes))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

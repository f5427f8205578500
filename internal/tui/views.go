package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/catalens/catalens/internal/catalog"
	"github.com/catalens/catalens/internal/domain"
	"github.com/catalens/catalens/internal/tui/components"
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/catalens/catalens/internal/wordfreq"
	"github.com/charmbracelet/lipgloss"
)

const (
	titleLengthBucket = 5
	wordCloudSize     = 40
	topRatings        = 10
	topCountries      = 15
)

// renderSection renders the active analysis section at the given width
func (m Model) renderSection(width int) string {
	if m.Table == nil {
		return styles.DimStyle.Render("no catalog loaded")
	}

	switch m.Sidebar.Selected() {
	case components.SectionContent:
		return m.renderContent(width)
	case components.SectionTrends:
		return m.renderTrends(width)
	case components.SectionDirectors:
		return m.renderDirectors(width)
	case components.SectionWordCloud:
		return m.renderWordClouds(width)
	default:
		return m.renderOverview(width)
	}
}

func sectionHeader(title string) string {
	return styles.HeaderStyle.Render(title)
}

// renderOverview shows the headline metrics, the type split, and the top ratings
func (m Model) renderOverview(width int) string {
	summary := m.Table.Summary()

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		metricCard("Total Content", fmt.Sprintf("%d", summary.Total)),
		metricCard("Movies", fmt.Sprintf("%d", summary.Movies)),
		metricCard("TV Shows", fmt.Sprintf("%d", summary.TVShows)),
		metricCard("Latest Year", latestYearLabel(summary.LatestYear)),
	)

	byType := m.Table.CountByType()
	split := components.ProportionBar(
		[]catalog.Tally{
			{Label: domain.TypeMovie.String(), Count: byType[domain.TypeMovie]},
			{Label: domain.TypeTVShow.String(), Count: byType[domain.TypeTVShow]},
		},
		width,
		[]lipgloss.Style{styles.BarStyle, styles.BarAltStyle},
	)

	ratings := components.BarChart(m.Table.CountByRating(topRatings), width, styles.BarStyle)

	return strings.Join([]string{
		cards,
		"",
		sectionHeader("Content Type Distribution"),
		split,
		"",
		sectionHeader(fmt.Sprintf("Top %d Content Ratings", topRatings)),
		ratings,
	}, "\n")
}

func metricCard(label, value string) string {
	return styles.MetricCardStyle.Render(
		styles.MetricValueStyle.Render(value) + "\n" + styles.MetricLabelStyle.Render(label))
}

func latestYearLabel(year int) string {
	if year == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", year)
}

// renderContent shows the adjustable genre chart and the insight panel
func (m Model) renderContent(width int) string {
	genres := components.BarChart(m.Table.TopGenres(m.TopGenres), width, styles.BarStyle)
	insights := m.Table.GenreInsights()

	panel := []string{
		fmt.Sprintf("%s %d",
			styles.ChartLabelStyle.Render("Total unique genres:"), insights.Unique),
	}
	if insights.Top.Label != "" {
		panel = append(panel, fmt.Sprintf("%s %s (%d titles)",
			styles.ChartLabelStyle.Render("Most popular genre:"),
			styles.AccentStyle.Render(insights.Top.Label), insights.Top.Count))
		panel = append(panel, fmt.Sprintf("%s %.1f",
			styles.ChartLabelStyle.Render("Average titles per genre:"), insights.MeanPerGenre))
	}

	return strings.Join([]string{
		sectionHeader(fmt.Sprintf("Top %d Genres", m.TopGenres)) +
			styles.DimStyle.Render("  (+/- to adjust)"),
		genres,
		"",
		sectionHeader("Genre Insights"),
		strings.Join(panel, "\n"),
	}, "\n")
}

// renderTrends shows yearly, monthly, and per-type growth charts
func (m Model) renderTrends(width int) string {
	yearly := components.BarChart(yearTallies(m.Table.CountByYear()), width, styles.BarStyle)
	monthly := components.BarChart(monthTallies(m.Table.CountByMonth()), width, styles.BarAltStyle)

	byYearType := m.Table.CountByYearAndType()
	growth := components.SplitBarChart(splitRows(byYearType), width, styles.BarStyle, styles.BarAltStyle)
	legend := styles.BarStyle.Render("■") + styles.ChartLabelStyle.Render(" Movie  ") +
		styles.BarAltStyle.Render("■") + styles.ChartLabelStyle.Render(" TV Show")

	return strings.Join([]string{
		sectionHeader("Titles Added by Year"),
		yearly,
		"",
		sectionHeader("Titles Added by Month"),
		monthly,
		"",
		sectionHeader("Content Growth by Type"),
		legend,
		growth,
	}, "\n")
}

// renderDirectors shows the top directors and the country treemap analogue
func (m Model) renderDirectors(width int) string {
	directors := components.BarChart(
		m.Table.CountByDirector(m.TopDirectors, m.ExcludeUnknown), width, styles.BarStyle)
	countries := components.BarChart(m.Table.CountByCountry(topCountries), width, styles.BarAltStyle)

	unknownHint := "excluded"
	if !m.ExcludeUnknown {
		unknownHint = "included"
	}

	return strings.Join([]string{
		sectionHeader(fmt.Sprintf("Top %d Directors", m.TopDirectors)) +
			styles.DimStyle.Render(fmt.Sprintf("  (Unknown %s, u to toggle)", unknownHint)),
		directors,
		"",
		sectionHeader("Content by Country"),
		countries,
	}, "\n")
}

// renderWordClouds shows per-type title word clouds and length histograms
func (m Model) renderWordClouds(width int) string {
	movieCloud := components.WordCloud(
		wordfreq.Top(m.Table.CorpusOfTitles(domain.TypeMovie), wordCloudSize), width)
	tvCloud := components.WordCloud(
		wordfreq.Top(m.Table.CorpusOfTitles(domain.TypeTVShow), wordCloudSize), width)

	movieLengths := components.Histogram(
		m.Table.TitleLengthDistribution(domain.TypeMovie), titleLengthBucket, width, styles.BarStyle)
	tvLengths := components.Histogram(
		m.Table.TitleLengthDistribution(domain.TypeTVShow), titleLengthBucket, width, styles.BarAltStyle)

	return strings.Join([]string{
		sectionHeader("Movie Titles"),
		movieCloud,
		"",
		sectionHeader("TV Show Titles"),
		tvCloud,
		"",
		sectionHeader("Movie Title Length"),
		movieLengths,
		"",
		sectionHeader("TV Show Title Length"),
		tvLengths,
	}, "\n")
}

// yearTallies orders the per-year counts chronologically
func yearTallies(counts map[int]int) []catalog.Tally {
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	tallies := make([]catalog.Tally, len(years))
	for i, y := range years {
		tallies[i] = catalog.Tally{Label: fmt.Sprintf("%d", y), Count: counts[y]}
	}
	return tallies
}

// monthTallies orders the per-month counts Jan..Dec, keeping empty months
func monthTallies(counts map[time.Month]int) []catalog.Tally {
	tallies := make([]catalog.Tally, 0, 12)
	for month := time.January; month <= time.December; month++ {
		tallies = append(tallies, catalog.Tally{
			Label: month.String()[:3],
			Count: counts[month],
		})
	}
	return tallies
}

// splitRows orders the (year, type) counts chronologically
func splitRows(counts map[catalog.YearType]int) []components.SplitRow {
	yearSet := make(map[int]struct{})
	for key := range counts {
		yearSet[key.Year] = struct{}{}
	}
	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)

	rows := make([]components.SplitRow, len(years))
	for i, y := range years {
		rows[i] = components.SplitRow{
			Label:     fmt.Sprintf("%d", y),
			Primary:   counts[catalog.YearType{Year: y, Type: domain.TypeMovie}],
			Secondary: counts[catalog.YearType{Year: y, Type: domain.TypeTVShow}],
		}
	}
	return rows
}

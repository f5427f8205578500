// Package report renders the main aggregates as plain text for
// non-interactive output (pipes, redirects, CI logs).
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/catalens/catalens/internal/catalog"
	"github.com/catalens/catalens/internal/domain"
	"github.com/catalens/catalens/internal/tui/components"
	"github.com/catalens/catalens/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// Write prints a static report of the catalog to w at the given width.
// Chart renderers degrade to plain text when stdout is not a terminal.
func Write(w io.Writer, table *catalog.Table, width int) error {
	if width < 40 {
		width = 40
	}

	summary := table.Summary()
	byType := table.CountByType()

	sections := []struct {
		title string
		body  string
	}{
		{
			"Catalog",
			fmt.Sprintf("total %d · movies %d · tv shows %d · latest year %d",
				summary.Total, summary.Movies, summary.TVShows, summary.LatestYear),
		},
		{
			"Content Type Distribution",
			components.ProportionBar([]catalog.Tally{
				{Label: domain.TypeMovie.String(), Count: byType[domain.TypeMovie]},
				{Label: domain.TypeTVShow.String(), Count: byType[domain.TypeTVShow]},
			}, width, []lipgloss.Style{styles.BarStyle, styles.BarAltStyle}),
		},
		{
			"Top 10 Content Ratings",
			components.BarChart(table.CountByRating(10), width, styles.BarStyle),
		},
		{
			"Top 10 Genres",
			components.BarChart(table.TopGenres(10), width, styles.BarStyle),
		},
		{
			"Titles Added by Year",
			components.BarChart(yearTallies(table.CountByYear()), width, styles.BarStyle),
		},
		{
			"Top 15 Directors",
			components.BarChart(table.CountByDirector(15, true), width, styles.BarStyle),
		},
		{
			"Top 15 Countries",
			components.BarChart(table.CountByCountry(15), width, styles.BarStyle),
		},
	}

	for i, s := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "== %s ==\n%s\n", s.title, s.body); err != nil {
			return err
		}
	}
	return nil
}

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

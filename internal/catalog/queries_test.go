package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalens/catalens/internal/domain"
)

// The three-record scenario: a movie, its exact duplicate, and a TV show
// with no date and an Unknown director.
const scenarioCSV = sampleHeader +
	`s1,Movie,Inferno,,United States,5/1/2019,PG-13,"Drama, Comedy"` + "\n" +
	`s1,Movie,Inferno,,United States,5/1/2019,PG-13,"Drama, Comedy"` + "\n" +
	"s2,TV Show,Dark Minds,Unknown,Japan,,TV-MA,Drama\n"

func scenarioTable(t *testing.T) *Table {
	t.Helper()
	return mustLoad(t, scenarioCSV)
}

func TestScenario(t *testing.T) {
	table := scenarioTable(t)

	assert.Equal(t, 2, table.Len(), "duplicate dropped")

	byType := table.CountByType()
	assert.Equal(t, 1, byType[domain.TypeMovie])
	assert.Equal(t, 1, byType[domain.TypeTVShow])

	assert.Equal(t, map[string]int{"Drama": 2, "Comedy": 1}, table.GenreCounts())

	// The undated TV show is excluded from time aggregations
	assert.Equal(t, map[int]int{2019: 1}, table.CountByYear())

	// Empty director and the Unknown sentinel both drop out
	assert.Empty(t, table.CountByDirector(10, true))
}

func TestCountByTypePartitionsTable(t *testing.T) {
	table := scenarioTable(t)

	total := 0
	for _, count := range table.CountByType() {
		total += count
	}
	assert.Equal(t, table.Len(), total)
}

func TestCountByYearAndMonthConsistency(t *testing.T) {
	table := scenarioTable(t)

	byYear := table.CountByYear()
	byMonth := table.CountByMonth()
	byYearType := table.CountByYearAndType()

	for _, rec := range table.Records() {
		if !rec.HasDateAdded() {
			continue
		}
		assert.Positive(t, byYear[rec.YearAdded])
		assert.Positive(t, byMonth[rec.MonthAdded])
		assert.Positive(t, byYearType[YearType{Year: rec.YearAdded, Type: rec.Type}])
	}
}

func TestCountByMonth(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,1/5/2019,,Drama\n" +
		"s2,Movie,B,,,1/20/2020,,Drama\n" +
		"s3,Movie,C,,,6/1/2020,,Drama\n"

	table := mustLoad(t, data)
	byMonth := table.CountByMonth()
	assert.Equal(t, 2, byMonth[time.January], "January counted across years")
	assert.Equal(t, 1, byMonth[time.June])
}

func TestTopGenresBoundaries(t *testing.T) {
	table := scenarioTable(t)

	assert.Empty(t, table.TopGenres(0))
	assert.Empty(t, table.TopGenres(-3))

	// N beyond the distinct count returns everything, count descending
	all := table.TopGenres(100)
	require.Len(t, all, 2)
	assert.Equal(t, Tally{Label: "Drama", Count: 2}, all[0])
	assert.Equal(t, Tally{Label: "Comedy", Count: 1}, all[1])
}

func TestTopTalliesTieBreakIsFirstSeen(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,,,Horror\n" +
		"s2,Movie,B,,,,,Comedy\n" +
		"s3,Movie,C,,,,,Horror\n" +
		"s4,Movie,D,,,,,Comedy\n" +
		"s5,Movie,E,,,,,Thriller\n"

	table := mustLoad(t, data)
	top := table.TopGenres(3)
	require.Len(t, top, 3)

	// Horror and Comedy tie at 2; Horror appeared first in the source
	assert.Equal(t, "Horror", top[0].Label)
	assert.Equal(t, "Comedy", top[1].Label)
	assert.Equal(t, "Thriller", top[2].Label)
}

func TestCountByRating(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,,PG-13,Drama\n" +
		"s2,Movie,B,,,,TV-MA,Drama\n" +
		"s3,Movie,C,,,,TV-MA,Drama\n" +
		"s4,Movie,D,,,,,Drama\n"

	table := mustLoad(t, data)
	ratings := table.CountByRating(10)
	require.Len(t, ratings, 2, "empty rating not tallied")
	assert.Equal(t, Tally{Label: "TV-MA", Count: 2}, ratings[0])
	assert.Equal(t, Tally{Label: "PG-13", Count: 1}, ratings[1])

	assert.Len(t, table.CountByRating(1), 1)
}

func TestCountByDirectorToggle(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,Nolan,,,PG,Drama\n" +
		"s2,Movie,B,Unknown,,,PG,Drama\n" +
		"s3,Movie,C,Unknown,,,PG,Drama\n" +
		"s4,Movie,D,Nolan,,,PG,Drama\n"

	table := mustLoad(t, data)

	included := table.CountByDirector(10, false)
	require.Len(t, included, 2)

	excluded := table.CountByDirector(10, true)
	require.Len(t, excluded, 1)
	assert.Equal(t, Tally{Label: "Nolan", Count: 2}, excluded[0])
}

func TestCountByCountry(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,India,,,Drama\n" +
		"s2,Movie,B,,India,,,Drama\n" +
		"s3,Movie,C,,Japan,,,Drama\n" +
		"s4,Movie,D,,,,,Drama\n"

	table := mustLoad(t, data)
	countries := table.CountByCountry(10)
	require.Len(t, countries, 2)
	assert.Equal(t, Tally{Label: "India", Count: 2}, countries[0])
}

func TestTitleLengthDistribution(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,Up,,,,,Drama\n" +
		"s2,Movie,Heat,,,,,Drama\n" +
		"s3,TV Show,Dark,,,,,Drama\n"

	table := mustLoad(t, data)
	assert.Equal(t, []int{2, 4}, table.TitleLengthDistribution(domain.TypeMovie))
	assert.Equal(t, []int{4}, table.TitleLengthDistribution(domain.TypeTVShow))
}

func TestTitleLengthDistributionEmptyNotNil(t *testing.T) {
	table := mustLoad(t, sampleHeader+"s1,Movie,A,,,,,Drama\n")
	dist := table.TitleLengthDistribution(domain.TypeTVShow)
	assert.NotNil(t, dist)
	assert.Empty(t, dist)
}

func TestCorpusOfTitles(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,First Blood,,,,,Action\n" +
		"s2,TV Show,Dark,,,,,Drama\n" +
		"s3,Movie,Heat,,,,,Crime\n"

	table := mustLoad(t, data)
	assert.Equal(t, "First Blood Heat", table.CorpusOfTitles(domain.TypeMovie))
	assert.Equal(t, "Dark", table.CorpusOfTitles(domain.TypeTVShow))
}

func TestSummary(t *testing.T) {
	table := scenarioTable(t)
	summary := table.Summary()

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Movies)
	assert.Equal(t, 1, summary.TVShows)
	assert.Equal(t, 2019, summary.LatestYear)
}

func TestGenreInsights(t *testing.T) {
	table := scenarioTable(t)
	insights := table.GenreInsights()

	assert.Equal(t, 2, insights.Unique)
	assert.Equal(t, Tally{Label: "Drama", Count: 2}, insights.Top)
	assert.InDelta(t, 1.5, insights.MeanPerGenre, 0.001)
}

func TestQueriesOnEmptyTable(t *testing.T) {
	table := mustLoad(t, strings.TrimSuffix(sampleHeader, "\n")+"\n")

	assert.Zero(t, table.Len())
	assert.Empty(t, table.CountByType())
	assert.Empty(t, table.GenreCounts())
	assert.Empty(t, table.TopGenres(5))
	assert.Empty(t, table.CountByYear())
	assert.Empty(t, table.CountByYearAndType())
	assert.Empty(t, table.CorpusOfTitles(domain.TypeMovie))
}

func TestFromRecordsRoundTrip(t *testing.T) {
	table := scenarioTable(t)

	rebuilt := FromRecords(table.Records())
	assert.Equal(t, table.Len(), rebuilt.Len())
	assert.Equal(t, table.GenreCounts(), rebuilt.GenreCounts())
	assert.Equal(t, table.CountByYear(), rebuilt.CountByYear())
}

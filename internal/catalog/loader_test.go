package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalens/catalens/internal/domain"
)

const sampleHeader = "show_id,type,title,director,country,date_added,rating,listed_in\n"

func mustLoad(t *testing.T, csvData string) *Table {
	t.Helper()
	table, err := LoadReader(strings.NewReader(csvData), "test.csv")
	require.NoError(t, err)
	return table
}

func TestLoadDropsExactDuplicates(t *testing.T) {
	row := `s1,Movie,Inferno,,United States,5/1/2019,PG-13,"Drama, Comedy"` + "\n"

	once := mustLoad(t, sampleHeader+row)
	thrice := mustLoad(t, sampleHeader+row+row+row)

	assert.Equal(t, once.Len(), thrice.Len())
	assert.Equal(t, 2, thrice.Stats().Duplicates)
}

func TestLoadKeepsFirstOccurrence(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,Alpha,,,,,Drama\n" +
		"s2,Movie,Beta,,,,,Drama\n" +
		"s1,Movie,Alpha,,,,,Drama\n"

	table := mustLoad(t, data)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "Alpha", table.Records()[0].Title)
	assert.Equal(t, "Beta", table.Records()[1].Title)
}

func TestLoadDerivesDateFields(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,5/1/2019,,Drama\n" +
		`s2,Movie,B,,,"September 25, 2021",,Drama` + "\n" +
		"s3,Movie,C,,,2020-03-15,,Drama\n"

	table := mustLoad(t, data)
	require.Equal(t, 3, table.Len())

	recs := table.Records()
	assert.Equal(t, 2019, recs[0].YearAdded)
	assert.Equal(t, 5, int(recs[0].MonthAdded))
	assert.Equal(t, 2021, recs[1].YearAdded)
	assert.Equal(t, 9, int(recs[1].MonthAdded))
	assert.Equal(t, 2020, recs[2].YearAdded)
	assert.Equal(t, 3, int(recs[2].MonthAdded))
}

func TestLoadMalformedDateIsNotFatal(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,not a date,,Drama\n" +
		"s2,Movie,B,,,5/1/2019,,Drama\n"

	table := mustLoad(t, data)
	require.Equal(t, 2, table.Len())

	recs := table.Records()
	assert.False(t, recs[0].HasDateAdded())
	assert.Zero(t, recs[0].YearAdded)
	assert.True(t, recs[1].HasDateAdded())
	assert.Equal(t, 1, table.Stats().MalformedDates)
}

func TestLoadMissingDateIsUndefined(t *testing.T) {
	table := mustLoad(t, sampleHeader+"s1,TV Show,A,Unknown,Japan,,TV-MA,Drama\n")

	rec := table.Records()[0]
	assert.False(t, rec.HasDateAdded())
	// An empty date is absent, not malformed
	assert.Zero(t, table.Stats().MalformedDates)
}

func TestLoadSplitsAndTrimsGenres(t *testing.T) {
	table := mustLoad(t, sampleHeader+`s1,Movie,A,,,,,"Drama,  Comedy , Horror"`+"\n")

	rec := table.Records()[0]
	assert.Equal(t, []string{"Drama", "Comedy", "Horror"}, rec.Genres)
}

func TestGenreSplitRoundTrip(t *testing.T) {
	listedIn := "Drama, Comedy, Action & Adventure"
	table := mustLoad(t, sampleHeader+`s1,Movie,A,,,,,"`+listedIn+`"`+"\n")

	rec := table.Records()[0]
	joined := strings.Join(rec.Genres, ",")

	// Equal up to whitespace trimming
	want := strings.ReplaceAll(listedIn, ", ", ",")
	assert.Equal(t, want, joined)
}

func TestLoadComputesTitleLengthInRunes(t *testing.T) {
	table := mustLoad(t, sampleHeader+"s1,Movie,Amélie,,,,,Drama\n")
	assert.Equal(t, 6, table.Records()[0].TitleLength)
}

func TestLoadDropsUnrecognizedTypes(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,,,,,Drama\n" +
		"s2,Documentary,B,,,,,Drama\n"

	table := mustLoad(t, data)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 1, table.Stats().SkippedTypes)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	_, err := LoadReader(strings.NewReader("show_id,type,title\ns1,Movie,A\n"), "test.csv")
	require.Error(t, err)

	var loadErr *domain.DataLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, domain.ErrMissingColumns)
}

func TestLoadEmptySource(t *testing.T) {
	_, err := LoadReader(strings.NewReader(""), "test.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptySource)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/catalog.csv")
	require.Error(t, err)

	var loadErr *domain.DataLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "/nonexistent/catalog.csv", loadErr.Path)
}

func TestLoadPreservesDirectorAndCountryVerbatim(t *testing.T) {
	data := sampleHeader +
		"s1,Movie,A,Unknown,,,PG,Drama\n" +
		"s2,Movie,B,,India,,PG,Drama\n"

	table := mustLoad(t, data)
	recs := table.Records()
	assert.Equal(t, domain.UnknownDirector, recs[0].Director)
	assert.Equal(t, "", recs[0].Country)
	assert.Equal(t, "", recs[1].Director)
	assert.Equal(t, "India", recs[1].Country)
}

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var titles = []string{
	"Breaking Bad",
	"Better Call Saul",
	"The Crown",
	"Stranger Things",
	"Dark",
}

func TestSearchEmptyQuery(t *testing.T) {
	assert.Nil(t, Search("", titles))
	assert.Nil(t, Search("   ", titles))
}

func TestSearchFindsTitle(t *testing.T) {
	matches := Search("crown", titles)
	require.NotEmpty(t, matches)
	assert.Equal(t, 2, matches[0].Index)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	matches := Search("DARK", titles)
	require.NotEmpty(t, matches)
	assert.Equal(t, 4, matches[0].Index)
}

func TestSearchReturnsMatchedIndexes(t *testing.T) {
	matches := Search("dark", titles)
	require.NotEmpty(t, matches)
	assert.NotEmpty(t, matches[0].MatchedIndexes, "omnibar needs positions to highlight")
}

func TestSearchRanksBetterMatchesFirst(t *testing.T) {
	matches := Search("b", []string{"Absolutely", "Bad"})
	require.NotEmpty(t, matches)
	// Prefix match beats a mid-word hit
	assert.Equal(t, 1, matches[0].Index)
}

func TestSearchIndexesPointIntoOriginalSlice(t *testing.T) {
	matches := Search("saul", titles)
	require.NotEmpty(t, matches)
	assert.Equal(t, "Better Call Saul", titles[matches[0].Index])
}

func TestSearchNoMatch(t *testing.T) {
	matches := Search("zzzzqqqq", titles)
	assert.Empty(t, matches)
}

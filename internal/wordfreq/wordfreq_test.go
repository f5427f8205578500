package wordfreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalens/catalens/internal/catalog"
)

func TestTopCountsAndOrders(t *testing.T) {
	top := Top("Love Story Love Death Story Love", 10)

	require.Len(t, top, 3)
	assert.Equal(t, catalog.Tally{Label: "love", Count: 3}, top[0])
	assert.Equal(t, catalog.Tally{Label: "story", Count: 2}, top[1])
	assert.Equal(t, catalog.Tally{Label: "death", Count: 1}, top[2])
}

func TestTopFoldsCase(t *testing.T) {
	top := Top("Dark DARK dark", 5)
	require.Len(t, top, 1)
	assert.Equal(t, 3, top[0].Count)
}

func TestTopDropsStopwordsAndShortTokens(t *testing.T) {
	top := Top("The Lord of the Rings: A Tale", 10)

	labels := make([]string, len(top))
	for i, w := range top {
		labels[i] = w.Label
	}
	assert.ElementsMatch(t, []string{"lord", "rings", "tale"}, labels)
}

func TestTopTieBreakIsFirstSeen(t *testing.T) {
	top := Top("zebra apple zebra apple mango", 3)

	require.Len(t, top, 3)
	assert.Equal(t, "zebra", top[0].Label)
	assert.Equal(t, "apple", top[1].Label)
	assert.Equal(t, "mango", top[2].Label)
}

func TestTopBoundaries(t *testing.T) {
	assert.Empty(t, Top("some words here", 0))
	assert.Empty(t, Top("some words here", -1))
	assert.Empty(t, Top("", 10))

	// n beyond distinct words returns all of them
	assert.Len(t, Top("alpha beta", 100), 2)
}

func TestTopSplitsOnPunctuation(t *testing.T) {
	top := Top("Spider-Man: Homecoming", 10)

	labels := make([]string, len(top))
	for i, w := range top {
		labels[i] = w.Label
	}
	assert.ElementsMatch(t, []string{"spider", "man", "homecoming"}, labels)
}

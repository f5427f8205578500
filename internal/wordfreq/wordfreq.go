// Package wordfreq turns a text corpus into word frequencies for the
// word-cloud views.
package wordfreq

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/catalens/catalens/internal/catalog"
)

// Words this common say nothing about a catalog of titles
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "by": {}, "de": {}, "el": {},
	"for": {}, "from": {}, "in": {}, "is": {}, "la": {}, "le": {},
	"my": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {}, "with": {},
}

// Top tokenizes the corpus and returns the n most frequent words, count
// descending with ties in first-seen order. Single-rune tokens and
// stopwords are dropped. Words are lowercased; no stemming.
func Top(corpus string, n int) []catalog.Tally {
	if n <= 0 {
		return []catalog.Tally{}
	}

	counts := make(map[string]int)
	order := []string{}
	for _, word := range tokenize(corpus) {
		if _, stop := stopwords[word]; stop {
			continue
		}
		if utf8.RuneCountInString(word) < 2 {
			continue
		}
		if _, ok := counts[word]; !ok {
			order = append(order, word)
		}
		counts[word]++
	}

	tallies := make([]catalog.Tally, len(order))
	for i, word := range order {
		tallies[i] = catalog.Tally{Label: word, Count: counts[word]}
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Count > tallies[j].Count
	})

	if n < len(tallies) {
		tallies = tallies[:n]
	}
	return tallies
}

// tokenize splits on anything that is not a letter or digit
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Package search ranks catalog titles against an omnibar query.
package search

import (
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Match is one ranked search hit
type Match struct {
	Index          int   // Index into the titles slice
	Score          int   // Higher is better
	MatchedIndexes []int // Rune positions that matched, for highlighting
}

// Search ranks titles against query. A cheap normalized-fold prefilter
// trims the candidate set before the scoring pass; the scoring pass
// supplies the matched positions the omnibar highlights. An empty query
// returns nil.
func Search(query string, titles []string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	candidates := make([]int, 0, len(titles))
	for i, title := range titles {
		if lfuzzy.MatchNormalizedFold(query, title) {
			candidates = append(candidates, i)
		}
	}

	// Typos fail the subsequence prefilter; fall back to scoring everything
	if len(candidates) == 0 {
		return rank(query, titles, nil)
	}

	subset := make([]string, len(candidates))
	for i, idx := range candidates {
		subset[i] = titles[idx]
	}
	return rank(query, subset, candidates)
}

// rank scores titles and maps subset indexes back to the caller's slice
func rank(query string, titles []string, remap []int) []Match {
	results := fuzzy.Find(query, titles)

	matches := make([]Match, len(results))
	for i, r := range results {
		idx := r.Index
		if remap != nil {
			idx = remap[r.Index]
		}
		matches[i] = Match{
			Index:          idx,
			Score:          r.Score,
			MatchedIndexes: r.MatchedIndexes,
		}
	}
	return matches
}

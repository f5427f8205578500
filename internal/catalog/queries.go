package catalog

import (
	"sort"
	"strings"
	"time"

	"github.com/catalens/catalens/internal/domain"
)

// Aggregation queries. All are pure reads over the loaded table and return
// empty (never nil) results when nothing matches. Ordered "topN" queries
// sort by count descending and break ties by first appearance in the
// source; n <= 0 yields an empty result and n beyond the number of
// distinct keys yields all of them.

// CountByType returns how many records each title type has
func (t *Table) CountByType() map[domain.TitleType]int {
	counts := make(map[domain.TitleType]int, 2)
	for i := range t.records {
		counts[t.records[i].Type]++
	}
	return counts
}

// CountByRating returns the topN content ratings by record count
func (t *Table) CountByRating(topN int) []Tally {
	return t.topTallies(topN, func(r *domain.CatalogRecord) []string {
		if r.Rating == "" {
			return nil
		}
		return []string{r.Rating}
	})
}

// GenreCounts counts titles per genre, summed across each record's genre list
func (t *Table) GenreCounts() map[string]int {
	counts := make(map[string]int)
	for i := range t.records {
		for _, g := range t.records[i].Genres {
			if g == "" {
				continue
			}
			counts[g]++
		}
	}
	return counts
}

// TopGenres returns the n most frequent genres
func (t *Table) TopGenres(n int) []Tally {
	return t.topTallies(n, func(r *domain.CatalogRecord) []string {
		return r.Genres
	})
}

// CountByYear counts titles added per year. Records without a parsed
// date_added are excluded.
func (t *Table) CountByYear() map[int]int {
	counts := make(map[int]int)
	for i := range t.records {
		if t.records[i].HasDateAdded() {
			counts[t.records[i].YearAdded]++
		}
	}
	return counts
}

// CountByMonth counts titles added per calendar month across all years.
// Records without a parsed date_added are excluded.
func (t *Table) CountByMonth() map[time.Month]int {
	counts := make(map[time.Month]int)
	for i := range t.records {
		if t.records[i].HasDateAdded() {
			counts[t.records[i].MonthAdded]++
		}
	}
	return counts
}

// CountByYearAndType counts titles added per (year, type) pair
func (t *Table) CountByYearAndType() map[YearType]int {
	counts := make(map[YearType]int)
	for i := range t.records {
		r := &t.records[i]
		if r.HasDateAdded() {
			counts[YearType{Year: r.YearAdded, Type: r.Type}]++
		}
	}
	return counts
}

// CountByDirector returns the topN directors by title count. With
// excludeUnknown set, records carrying the "Unknown" sentinel are left out.
func (t *Table) CountByDirector(topN int, excludeUnknown bool) []Tally {
	return t.topTallies(topN, func(r *domain.CatalogRecord) []string {
		if r.Director == "" {
			return nil
		}
		if excludeUnknown && r.Director == domain.UnknownDirector {
			return nil
		}
		return []string{r.Director}
	})
}

// CountByCountry returns the topN countries by title count
func (t *Table) CountByCountry(topN int) []Tally {
	return t.topTallies(topN, func(r *domain.CatalogRecord) []string {
		if r.Country == "" {
			return nil
		}
		return []string{r.Country}
	})
}

// TitleLengthDistribution returns the per-record title lengths (rune
// counts) for the given type, in source order. Callers bucket the values.
func (t *Table) TitleLengthDistribution(titleType domain.TitleType) []int {
	lengths := []int{}
	for i := range t.records {
		if t.records[i].Type == titleType {
			lengths = append(lengths, t.records[i].TitleLength)
		}
	}
	return lengths
}

// CorpusOfTitles joins all titles of the given type into one blob, in
// source order, for word-frequency rendering.
func (t *Table) CorpusOfTitles(titleType domain.TitleType) string {
	var b strings.Builder
	for i := range t.records {
		if t.records[i].Type != titleType || t.records[i].Title == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.records[i].Title)
	}
	return b.String()
}

// Summary returns the overview metrics
func (t *Table) Summary() Summary {
	s := Summary{Total: len(t.records)}
	for i := range t.records {
		r := &t.records[i]
		if r.Type == domain.TypeMovie {
			s.Movies++
		} else {
			s.TVShows++
		}
		if r.HasDateAdded() && r.YearAdded > s.LatestYear {
			s.LatestYear = r.YearAdded
		}
	}
	return s
}

// GenreInsights summarizes the genre distribution for the insight panel
func (t *Table) GenreInsights() GenreInsights {
	top := t.TopGenres(1)
	counts := t.GenreCounts()

	insights := GenreInsights{Unique: len(counts)}
	if len(top) > 0 {
		insights.Top = top[0]
	}
	if len(counts) > 0 {
		total := 0
		for _, c := range counts {
			total += c
		}
		insights.MeanPerGenre = float64(total) / float64(len(counts))
	}
	return insights
}

// topTallies counts every key keysOf yields across the table and returns
// the topN. Keys are tallied in source order so that a stable sort leaves
// equal counts in first-seen order.
func (t *Table) topTallies(topN int, keysOf func(*domain.CatalogRecord) []string) []Tally {
	if topN <= 0 {
		return []Tally{}
	}

	counts := make(map[string]int)
	labels := []string{} // first-seen order
	for i := range t.records {
		for _, k := range keysOf(&t.records[i]) {
			if k == "" {
				continue
			}
			if _, ok := counts[k]; !ok {
				labels = append(labels, k)
			}
			counts[k]++
		}
	}

	tallies := make([]Tally, len(labels))
	for i, label := range labels {
		tallies[i] = Tally{Label: label, Count: counts[label]}
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Count > tallies[j].Count
	})

	if topN < len(tallies) {
		tallies = tallies[:topN]
	}
	return tallies
}

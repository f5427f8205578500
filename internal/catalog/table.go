// Package catalog loads the media-catalog dataset and answers the
// aggregation queries the dashboard views render. The table is built once
// at startup and is read-only afterwards.
package catalog

import (
	"github.com/catalens/catalens/internal/domain"
)

// Tally is one (label, count) entry of an ordered aggregation result
type Tally struct {
	Label string
	Count int
}

// YearType keys the per-year, per-type aggregation
type YearType struct {
	Year int
	Type domain.TitleType
}

// Summary holds the headline metrics shown on the overview section
type Summary struct {
	Total      int
	Movies     int
	TVShows    int
	LatestYear int // Max YearAdded across dated records, 0 if none
}

// GenreInsights summarizes the genre distribution
type GenreInsights struct {
	Unique       int     // Distinct genre names
	Top          Tally   // Most frequent genre
	MeanPerGenre float64 // Average titles per genre
}

// LoadStats records what the loader encountered in the raw source
type LoadStats struct {
	Rows           int // Raw data rows read (excluding header)
	Duplicates     int // Exact-duplicate rows dropped
	MalformedDates int // Rows whose date_added did not parse
	SkippedTypes   int // Rows dropped for an unrecognized type value
}

// Table is the immutable, deduplicated, field-enriched catalog.
type Table struct {
	records []domain.CatalogRecord
	stats   LoadStats
}

// FromRecords builds a table around already-enriched records, e.g. restored
// from a snapshot. The slice is taken over, not copied.
func FromRecords(records []domain.CatalogRecord) *Table {
	return &Table{records: records, stats: LoadStats{Rows: len(records)}}
}

// Len returns the number of records in the table
func (t *Table) Len() int {
	return len(t.records)
}

// Records exposes the underlying records in source order. Callers must
// treat the slice as read-only.
func (t *Table) Records() []domain.CatalogRecord {
	return t.records
}

// Stats returns what the loader saw while building the table
func (t *Table) Stats() LoadStats {
	return t.stats
}

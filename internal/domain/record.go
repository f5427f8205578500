package domain

import (
	"fmt"
	"time"
)

// TitleType distinguishes the two kinds of catalog entries
type TitleType int

const (
	TypeMovie TitleType = iota
	TypeTVShow
)

// String returns a human-readable representation of the title type
func (t TitleType) String() string {
	switch t {
	case TypeMovie:
		return "Movie"
	case TypeTVShow:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// ParseTitleType parses the type column of the source dataset.
// The dataset spells exactly "Movie" and "TV Show".
func ParseTitleType(s string) (TitleType, error) {
	switch s {
	case "Movie":
		return TypeMovie, nil
	case "TV Show":
		return TypeTVShow, nil
	default:
		return 0, fmt.Errorf("unrecognized title type %q", s)
	}
}

// UnknownDirector is the sentinel the source dataset uses for a missing director
const UnknownDirector = "Unknown"

// CatalogRecord is one title entry of the media catalog.
//
// Raw fields come straight from the source row. Derived fields are computed
// once at load time and never written back to the source.
type CatalogRecord struct {
	ID       string    // Opaque unique identifier (show_id column)
	Type     TitleType // Movie or TV Show
	Title    string    // Display title, may be empty
	Director string    // Verbatim, "Unknown" sentinel preserved
	Country  string    // Verbatim, may be empty
	Rating   string    // Age rating code ("PG-13", "TV-MA", ...)
	ListedIn string    // Raw comma-separated genre list

	// DateAdded is the date the title entered the catalog.
	// The zero value means the source had no parsable date.
	DateAdded time.Time

	// Derived fields
	YearAdded   int        // 0 when DateAdded is undefined
	MonthAdded  time.Month // 0 when DateAdded is undefined
	Genres      []string   // ListedIn split on ",", trimmed, order preserved
	TitleLength int        // Rune count of Title
}

// HasDateAdded reports whether the record carries a parsed date_added value.
// Records without one are excluded from time-based aggregations.
func (r *CatalogRecord) HasDateAdded() bool {
	return !r.DateAdded.IsZero()
}

// IsMovie reports whether the record is a movie
func (r *CatalogRecord) IsMovie() bool {
	return r.Type == TypeMovie
}

package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/catalens/catalens/internal/domain"
)

// Required source columns. The loader refuses a source without them.
var requiredColumns = []string{"type", "title", "listed_in"}

// Date layouts the dataset is known to use ("9/25/2021",
// "September 25, 2021", "2021-09-25"). Anything else leaves the
// record's year/month undefined.
var dateLayouts = []string{
	"1/2/2006",
	"January 2, 2006",
	"2006-01-02",
}

// Load reads the catalog CSV at path into an immutable table.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.DataLoadError{Path: path, Reason: "cannot open source", Err: err}
	}
	defer f.Close()

	return LoadReader(f, path)
}

// LoadReader parses a catalog from r. The path is only used for error
// reporting and may be empty.
//
// Exact-duplicate raw rows are dropped (first occurrence kept, full-row
// equality). Rows with an unparsable date_added keep their year/month
// undefined but stay in the table. Rows whose type column is neither
// "Movie" nor "TV Show" are dropped.
func LoadReader(r io.Reader, path string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &domain.DataLoadError{Path: path, Reason: "no header row", Err: domain.ErrEmptySource}
	}
	if err != nil {
		return nil, &domain.DataLoadError{Path: path, Reason: "cannot read header", Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &domain.DataLoadError{
				Path:   path,
				Reason: "missing required column " + name,
				Err:    domain.ErrMissingColumns,
			}
		}
	}

	var (
		records []domain.CatalogRecord
		stats   LoadStats
		seen    = make(map[string]struct{})
	)

	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// A single mangled line is not worth losing the dataset over
				continue
			}
			return nil, &domain.DataLoadError{Path: path, Reason: "read failure", Err: err}
		}
		stats.Rows++

		// Full-row equality dedup, first occurrence kept
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			stats.Duplicates++
			continue
		}
		seen[key] = struct{}{}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		titleType, err := domain.ParseTitleType(field("type"))
		if err != nil {
			stats.SkippedTypes++
			continue
		}

		rec := domain.CatalogRecord{
			ID:       field("show_id"),
			Type:     titleType,
			Title:    field("title"),
			Director: field("director"),
			Country:  field("country"),
			Rating:   field("rating"),
			ListedIn: field("listed_in"),
		}

		if raw := strings.TrimSpace(field("date_added")); raw != "" {
			if added, ok := parseDate(raw); ok {
				rec.DateAdded = added
				rec.YearAdded = added.Year()
				rec.MonthAdded = added.Month()
			} else {
				stats.MalformedDates++
			}
		}

		rec.Genres = splitGenres(rec.ListedIn)
		rec.TitleLength = utf8.RuneCountInString(rec.Title)

		records = append(records, rec)
	}

	return &Table{records: records, stats: stats}, nil
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// splitGenres splits listed_in on "," and trims whitespace. The split is
// purely syntactic; genre names are not validated or normalized.
func splitGenres(listedIn string) []string {
	if listedIn == "" {
		return nil
	}
	parts := strings.Split(listedIn, ",")
	genres := make([]string, len(parts))
	for i, p := range parts {
		genres[i] = strings.TrimSpace(p)
	}
	return genres
}

package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"housing-market-analysis/dataset"
	"housing-market-analysis/models"
	"housing-market-analysis/utils"
)

// The four columns the cleaner coerces; every other column passes through.
const (
	ColListPrice  = "listPrice"
	ColSqft       = "sqft"
	ColYearBuilt  = "year_built"
	ColLastSoldOn = "lastSoldOn"
)

// dateLayouts are tried in order when coercing lastSoldOn.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
}

// Cleaner coerces the target columns of a raw table into typed Listings,
// dropping any row where a target field is missing or unparseable.
type Cleaner struct {
	logger *utils.Logger
}

// NewCleaner creates a Cleaner with the given logger.
func NewCleaner(logger *utils.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean converts the raw table into cleaned listings. Unparseable values are
// treated as missing rather than errors; rows with any missing target field
// are dropped. Returns an error only when a target column is absent entirely.
func (c *Cleaner) Clean(t *dataset.Table) ([]*models.Listing, error) {
	cols := map[string]int{}
	for _, name := range []string{ColListPrice, ColSqft, ColYearBuilt, ColLastSoldOn} {
		idx := t.ColumnIndex(name)
		if idx < 0 {
			return nil, fmt.Errorf("cleaner: missing expected column %q", name)
		}
		cols[name] = idx
	}

	result := make([]*models.Listing, 0, len(t.Rows))
	dropped := 0

	for _, row := range t.Rows {
		price, okPrice := parseNumeric(row[cols[ColListPrice]])
		sqft, okSqft := parseNumeric(row[cols[ColSqft]])
		year, okYear := parseYear(row[cols[ColYearBuilt]])
		soldOn, okDate := parseDate(row[cols[ColLastSoldOn]])

		if !okPrice || !okSqft || !okYear || !okDate {
			dropped++
			continue
		}

		listing := &models.Listing{
			ListPrice:  price,
			Sqft:       sqft,
			YearBuilt:  year,
			LastSoldOn: soldOn,
			Extra:      make(map[string]string),
		}
		for i, h := range t.Header {
			if _, target := cols[h]; target || i >= len(row) {
				continue
			}
			listing.Extra[h] = row[i]
		}

		result = append(result, listing)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d rows (dropped %d with missing or unparseable fields)",
		len(t.Rows), len(result), dropped)
	return result, nil
}

// parseNumeric coerces a raw cell to float64, tolerating currency symbols,
// comma grouping and surrounding whitespace. Blank and NA markers are missing.
func parseNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" || isNA(s) {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseYear coerces a raw cell to an integer year. Values like "1995.0" are
// accepted; fractional years are missing.
func parseYear(raw string) (int, bool) {
	v, ok := parseNumeric(raw)
	if !ok || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

// parseDate coerces a raw cell to a calendar date, trying each supported
// layout in order.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || isNA(s) {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func isNA(s string) bool {
	switch strings.ToLower(s) {
	case "na", "n/a", "nan", "null", "none", "-":
		return true
	}
	return false
}

package models

import "time"

// Listing is a cleaned real-estate record. After cleaning, the four target
// fields are guaranteed present and well-typed; rows that fail coercion are
// dropped, never repaired.
type Listing struct {
	ID         int64
	ListPrice  float64
	Sqft       float64
	YearBuilt  int
	LastSoldOn time.Time

	// Extra carries the source columns the cleaner does not touch,
	// keyed by original header name.
	Extra map[string]string
}

// SaleYear returns the calendar year the listing was last sold.
func (l *Listing) SaleYear() int {
	return l.LastSoldOn.Year()
}

// AggregateRow is one (group key, mean price) output pair. Year is either a
// construction year or a sale year depending on the grouping.
type AggregateRow struct {
	Year     int
	AvgPrice float64
	Count    int
}

// AnalysisReport holds the computed summaries for the end-of-run printout.
type AnalysisReport struct {
	TotalRows        int
	CleanRows        int
	DroppedRows      int
	PriceByYearBuilt []AggregateRow
	PriceBySaleYear  []AggregateRow
}

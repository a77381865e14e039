package services

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"

	"housing-market-analysis/models"
	"housing-market-analysis/utils"
)

// Grouped averages are restricted to this inclusive year window.
const (
	WindowStartYear = 2014
	WindowEndYear   = 2024
)

// AggregateService computes the grouped mean-price summaries.
type AggregateService struct {
	logger *utils.Logger
}

func NewAggregateService(logger *utils.Logger) *AggregateService {
	return &AggregateService{logger: logger}
}

// AvgPriceByYearBuilt groups listings by construction year and returns the
// mean list price per year, ascending, within the fixed window.
func (s *AggregateService) AvgPriceByYearBuilt(listings []*models.Listing) []models.AggregateRow {
	return s.groupMean(listings, func(l *models.Listing) int { return l.YearBuilt })
}

// AvgPriceBySaleYear groups listings by the year of their last sale and
// returns the mean list price per year, ascending, within the fixed window.
func (s *AggregateService) AvgPriceBySaleYear(listings []*models.Listing) []models.AggregateRow {
	return s.groupMean(listings, func(l *models.Listing) int { return l.SaleYear() })
}

// groupMean buckets listings by keyFn and computes a straight arithmetic mean
// of list price per bucket. Keys outside [WindowStartYear, WindowEndYear]
// never appear in the result.
func (s *AggregateService) groupMean(listings []*models.Listing, keyFn func(*models.Listing) int) []models.AggregateRow {
	buckets := make(map[int][]float64)
	for _, l := range listings {
		year := keyFn(l)
		if year < WindowStartYear || year > WindowEndYear {
			continue
		}
		buckets[year] = append(buckets[year], l.ListPrice)
	}

	rows := make([]models.AggregateRow, 0, len(buckets))
	for year, prices := range buckets {
		rows = append(rows, models.AggregateRow{
			Year:     year,
			AvgPrice: stat.Mean(prices, nil),
			Count:    len(prices),
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })
	return rows
}

// Generate assembles the full report from the cleaned dataset.
func (s *AggregateService) Generate(totalRows int, listings []*models.Listing) *models.AnalysisReport {
	return &models.AnalysisReport{
		TotalRows:        totalRows,
		CleanRows:        len(listings),
		DroppedRows:      totalRows - len(listings),
		PriceByYearBuilt: s.AvgPriceByYearBuilt(listings),
		PriceBySaleYear:  s.AvgPriceBySaleYear(listings),
	}
}

// Print writes the report to stdout in a formatted block.
func (s *AggregateService) Print(r *models.AnalysisReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  🏠 HOUSING MARKET ANALYSIS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Dataset\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Rows loaded  : \033[1m%d\033[0m\n", r.TotalRows)
	fmt.Printf("  Rows cleaned : \033[1m%d\033[0m (dropped %d)\n", r.CleanRows, r.DroppedRows)
	fmt.Printf("  Year window  : %d–%d\n\n", WindowStartYear, WindowEndYear)

	printTable := func(title, keyLabel string, rows []models.AggregateRow) {
		fmt.Printf("\033[1;33m  %s\033[0m\n", title)
		fmt.Printf("  %s\n", thin)
		if len(rows) == 0 {
			fmt.Printf("  No data in window\n\n")
			return
		}
		for _, row := range rows {
			fmt.Printf("  %s %d : \033[1;32m%s\033[0m (%d listings)\n",
				keyLabel, row.Year, utils.FormatCurrency(row.AvgPrice), row.Count)
		}
		fmt.Println()
	}

	printTable("Average List Price by Year Built", "Built", r.PriceByYearBuilt)
	printTable("Average List Price by Sale Year", "Sold", r.PriceBySaleYear)

	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)
}

package charts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"housing-market-analysis/models"
	"housing-market-analysis/utils"
)

func assertPNGWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected chart at %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Fatalf("chart at %s is empty", path)
	}
}

func TestPriceTrendWritesPNG(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir, utils.NewLogger())
	if err != nil {
		t.Fatal(err)
	}

	rows := []models.AggregateRow{
		{Year: 2019, AvgPrice: 410000, Count: 10},
		{Year: 2020, AvgPrice: 455000, Count: 14},
		{Year: 2021, AvgPrice: 512000, Count: 11},
	}
	if err := r.PriceTrend(rows, "price_trend.png"); err != nil {
		t.Fatalf("PriceTrend: %v", err)
	}
	assertPNGWritten(t, filepath.Join(dir, "price_trend.png"))
}

func TestPriceVsSqftWritesPNG(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(dir, utils.NewLogger())
	if err != nil {
		t.Fatal(err)
	}

	listings := []*models.Listing{
		{ListPrice: 450000, Sqft: 1800, YearBuilt: 1995, LastSoldOn: time.Date(2021, 6, 15, 0, 0, 0, 0, time.UTC)},
		{ListPrice: 380000, Sqft: 1450, YearBuilt: 1979, LastSoldOn: time.Date(2018, 11, 5, 0, 0, 0, 0, time.UTC)},
		{ListPrice: 610000, Sqft: 2600, YearBuilt: 2010, LastSoldOn: time.Date(2022, 1, 30, 0, 0, 0, 0, time.UTC)},
	}
	if err := r.PriceVsSqft(listings, "price_vs_sqft.png"); err != nil {
		t.Fatalf("PriceVsSqft: %v", err)
	}
	assertPNGWritten(t, filepath.Join(dir, "price_vs_sqft.png"))
}

func TestRendererCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	if _, err := NewRenderer(dir, utils.NewLogger()); err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("output dir not created: %v", err)
	}
}

func TestCurrencyTickerLabels(t *testing.T) {
	ticks := currencyTicker{}.Ticks(0, 600000)
	labeled := 0
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		labeled++
		if tick.Label[0] != '$' {
			t.Errorf("tick label %q should be currency-formatted", tick.Label)
		}
	}
	if labeled == 0 {
		t.Fatal("expected at least one labeled tick")
	}
}

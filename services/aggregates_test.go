package services

import (
	"testing"
	"time"

	"housing-market-analysis/models"
)

func listing(price, sqft float64, yearBuilt, saleYear int) *models.Listing {
	return &models.Listing{
		ListPrice:  price,
		Sqft:       sqft,
		YearBuilt:  yearBuilt,
		LastSoldOn: time.Date(saleYear, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGroupMeanHandComputed(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	listings := []*models.Listing{
		listing(100000, 1500, 2018, 2020),
		listing(200000, 1600, 2018, 2020),
		listing(300000, 1700, 2018, 2020),
	}

	rows := svc.AvgPriceByYearBuilt(listings)
	if len(rows) != 1 {
		t.Fatalf("expected 1 group, got %d", len(rows))
	}
	if rows[0].Year != 2018 || rows[0].AvgPrice != 200000 || rows[0].Count != 3 {
		t.Errorf("got %+v, want year 2018 avg 200000 count 3", rows[0])
	}
}

func TestWindowExcludesOutOfRangeYears(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	listings := []*models.Listing{
		listing(100000, 1500, 2013, 2013), // below window
		listing(200000, 1600, 2014, 2014), // window start
		listing(300000, 1700, 2024, 2024), // window end
		listing(400000, 1800, 2025, 2025), // above window
	}

	for _, rows := range [][]models.AggregateRow{
		svc.AvgPriceByYearBuilt(listings),
		svc.AvgPriceBySaleYear(listings),
	} {
		if len(rows) != 2 {
			t.Fatalf("expected 2 groups inside window, got %d: %+v", len(rows), rows)
		}
		for _, r := range rows {
			if r.Year < WindowStartYear || r.Year > WindowEndYear {
				t.Errorf("group key %d outside window [%d, %d]", r.Year, WindowStartYear, WindowEndYear)
			}
		}
	}
}

func TestGroupsSortedAscending(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	listings := []*models.Listing{
		listing(300000, 1500, 2022, 2023),
		listing(100000, 1600, 2015, 2016),
		listing(200000, 1700, 2019, 2020),
	}

	rows := svc.AvgPriceBySaleYear(listings)
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Year >= rows[i].Year {
			t.Fatalf("rows not sorted ascending by year: %+v", rows)
		}
	}
}

func TestSaleYearGroupingUsesSoldDate(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	// Built outside the window but sold inside it: present in the sale-year
	// grouping, absent from the year-built grouping.
	listings := []*models.Listing{listing(500000, 2000, 1990, 2021)}

	if rows := svc.AvgPriceByYearBuilt(listings); len(rows) != 0 {
		t.Errorf("year-built grouping should be empty, got %+v", rows)
	}
	rows := svc.AvgPriceBySaleYear(listings)
	if len(rows) != 1 || rows[0].Year != 2021 {
		t.Fatalf("sale-year grouping: got %+v, want single 2021 group", rows)
	}
}

func TestGenerateReportCounts(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	listings := []*models.Listing{
		listing(100000, 1500, 2018, 2020),
		listing(200000, 1600, 2018, 2021),
	}

	r := svc.Generate(5, listings)
	if r.TotalRows != 5 || r.CleanRows != 2 || r.DroppedRows != 3 {
		t.Errorf("report counts: got %+v", r)
	}
}

func TestEmptyInput(t *testing.T) {
	svc := NewAggregateService(newTestLogger())
	if rows := svc.AvgPriceByYearBuilt(nil); len(rows) != 0 {
		t.Errorf("expected no groups for empty input, got %+v", rows)
	}
}

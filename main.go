package main

import (
	"fmt"
	"os"
	"path/filepath"

	"housing-market-analysis/charts"
	"housing-market-analysis/config"
	"housing-market-analysis/dataset"
	"housing-market-analysis/models"
	"housing-market-analysis/services"
	"housing-market-analysis/storage"
	"housing-market-analysis/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Housing Market Analysis starting ===")
	logger.Info("Config — input: %s | output dir: %s | postgres: %v",
		cfg.CSVInputPath, cfg.OutputDir, cfg.PostgresEnabled)

	table := dataset.Load(cfg.CSVInputPath, logger)
	if table.Empty() {
		logger.Error("No data loaded from %s — nothing to analyze. Exiting.", cfg.CSVInputPath)
		return
	}

	cleaner := services.NewCleaner(logger)
	listings, err := cleaner.Clean(table)
	if err != nil {
		logger.Error("Cleaning failed: %v", err)
		os.Exit(1)
	}
	if len(listings) == 0 {
		logger.Error("All rows were dropped during cleaning. Exiting.")
		return
	}

	if cfg.PostgresEnabled {
		pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
		if err != nil {
			logger.Error("Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer pgWriter.Close()

		if err := pgWriter.Write(listings); err != nil {
			logger.Error("PostgreSQL write failed: %v", err)
		} else {
			logger.Info("Clean listings stored in PostgreSQL (table: listings)")
		}

		dbListings, err := pgWriter.FetchAll()
		if err != nil {
			logger.Error("Failed to fetch listings from DB: %v — using in-memory dataset", err)
		} else {
			listings = dbListings
		}
	}

	aggSvc := services.NewAggregateService(logger)
	report := aggSvc.Generate(len(table.Rows), listings)
	aggSvc.Print(report)

	exports := []struct {
		file      string
		keyHeader string
		rows      []models.AggregateRow
	}{
		{config.AvgByYearBuiltCSV, "year_built", report.PriceByYearBuilt},
		{config.AvgBySaleYearCSV, "sale_year", report.PriceBySaleYear},
	}
	for _, e := range exports {
		path := filepath.Join(cfg.OutputDir, e.file)
		if err := storage.ExportAggregate(path, e.keyHeader, e.rows); err != nil {
			logger.Error("CSV export failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Aggregate saved to %s", path)
	}

	renderer, err := charts.NewRenderer(cfg.OutputDir, logger)
	if err != nil {
		logger.Error("Chart setup failed: %v", err)
		os.Exit(1)
	}
	if err := renderer.PriceTrend(report.PriceBySaleYear, config.PriceTrendPNG); err != nil {
		logger.Error("Chart render failed: %v", err)
		os.Exit(1)
	}
	if err := renderer.PriceVsSqft(listings, config.PriceVsSqftPNG); err != nil {
		logger.Error("Chart render failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("  Done. Summaries + charts → %s\n\n", cfg.OutputDir)
}

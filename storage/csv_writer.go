package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"housing-market-analysis/models"
)

// CSVWriter writes aggregate rows to a two-column CSV file. Output is
// deterministic: rows are written in the order given and averages use a
// fixed two-decimal format, so identical input yields byte-identical files.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path, keyHeader string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write([]string{keyHeader, "avg_list_price"}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// WriteRows appends one record per aggregate row.
func (c *CSVWriter) WriteRows(rows []models.AggregateRow) error {
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			strconv.FormatFloat(r.AvgPrice, 'f', 2, 64),
		}
		if err := c.writer.Write(record); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}

// ExportAggregate is the one-shot path the driver uses: create, write, close.
func ExportAggregate(path, keyHeader string, rows []models.AggregateRow) error {
	w, err := NewCSVWriter(path, keyHeader)
	if err != nil {
		return err
	}
	if err := w.WriteRows(rows); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

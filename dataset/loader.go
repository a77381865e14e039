package dataset

import (
	"encoding/csv"
	"fmt"
	"os"

	"housing-market-analysis/utils"
)

// Table is a raw tabular dataset: one header row plus string-valued records,
// original column set untouched.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table holds no data rows.
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Load reads the CSV at path into a Table. Any failure — missing file,
// malformed quoting, ragged records — is logged and yields an empty table;
// the caller decides whether to continue.
func Load(path string, logger *utils.Logger) *Table {
	t, err := read(path)
	if err != nil {
		logger.Error("[dataset] Could not load %s: %v", path, err)
		return &Table{}
	}

	logger.Info("[dataset] Loaded %d rows, %d columns from %s",
		len(t.Rows), len(t.Header), path)
	return t
}

func read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: parse: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset: %s has no header row", path)
	}

	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// Package csvout serializes generated tables to CSV files with a header
// row, one file per table.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// Table is a named flat table ready for serialization. Column order in
// Header matches the per-row value order.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// WriteDir writes every table to dir as <name>.csv, creating dir if
// absent. Writes are not atomic; a failure leaves already-written files
// in place (fail fast, no cleanup).
func WriteDir(dir string, tables []Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, t := range tables {
		if err := writeTable(dir, t); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(dir string, t Table) error {
	path := filepath.Join(dir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write %s header: %w", t.Name, err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s record: %w", t.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", t.Name, err)
	}
	return f.Close()
}

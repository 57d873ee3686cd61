// Package source reads tabular input for the timeline pipeline.
package source

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/penwyp/timeline-viz/internal/core/model"
)

// Table is an in-memory CSV file: a header plus one map per row.
type Table struct {
	Columns []string
	Rows    []map[string]string
}

// RowEntity pairs an entity id with its source row.
type RowEntity struct {
	ID  string
	Row map[string]string
}

// ReadCSV loads a CSV file with a header row.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	table := &Table{Columns: records[0]}
	for _, record := range records[1:] {
		row := make(map[string]string, len(table.Columns))
		for i, col := range table.Columns {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// Entities materializes one entity per row. The id comes from idColumn, or
// the positional row index ("row_N") when idColumn is empty. Duplicate id
// values are a configuration error: silently overwriting one entity's image
// with another's would hide data.
func (t *Table) Entities(idColumn string) ([]RowEntity, error) {
	if idColumn != "" && !t.HasColumn(idColumn) {
		return nil, model.NewConfigErrorf("id column %q not found in input", idColumn)
	}

	seen := make(map[string]bool, len(t.Rows))
	entities := make([]RowEntity, 0, len(t.Rows))
	for i, row := range t.Rows {
		id := fmt.Sprintf("row_%d", i)
		if idColumn != "" {
			id = row[idColumn]
			if id == "" {
				return nil, model.NewConfigErrorf("row %d has an empty %s value", i, idColumn)
			}
		}
		if seen[id] {
			return nil, model.NewConfigErrorf("duplicate entity id %q in column %s", id, idColumn)
		}
		seen[id] = true
		entities = append(entities, RowEntity{ID: id, Row: row})
	}
	return entities, nil
}

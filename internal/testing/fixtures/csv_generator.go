// Package fixtures generates sample CSV event data for tests and for the
// sample subcommand.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"time"
)

// defaultColumns lists the timestamp columns generated per entity type.
var defaultColumns = map[string][]string{
	"generic": {"created_at_utc", "updated_at_utc", "completed_at_utc"},
	"patient": {"admission_start_utc", "kit_assigned_utc", "activated_utc",
		"first_event_utc", "first_task_utc", "discharged_utc"},
	"order": {"order_placed_utc", "payment_received_utc", "processing_started_utc",
		"shipped_utc", "delivered_utc"},
	"task": {"created_at_utc", "assigned_at_utc", "started_at_utc",
		"milestone_1_at_utc", "milestone_2_at_utc", "completed_at_utc"},
}

// GeneratorOptions controls sample data generation.
type GeneratorOptions struct {
	Entities int
	Type     string // generic, patient, order, task
	Columns  []string
	Seed     int64
}

// Records produces a header and rows of sequential timestamps with small
// random gaps. Roughly one in ten non-leading timestamps is left empty, and
// every third entity gets a multi-day gap midway through its columns to
// exercise timeline breaks.
func Records(opts GeneratorOptions) ([]string, [][]string) {
	if opts.Entities <= 0 {
		opts.Entities = 5
	}
	if opts.Type == "" {
		opts.Type = "generic"
	}

	columns := opts.Columns
	if columns == nil {
		columns = defaultColumns[opts.Type]
		if columns == nil {
			columns = defaultColumns["generic"]
		}
	}

	idColumn := "entity_id"
	if opts.Type != "generic" {
		idColumn = opts.Type + "_id"
	}
	header := append([]string{idColumn}, columns...)

	rng := rand.New(rand.NewSource(opts.Seed))
	rows := make([][]string, 0, opts.Entities)
	for i := 1; i <= opts.Entities; i++ {
		current := time.Date(2024, time.Month(1+rng.Intn(12)), 1+rng.Intn(28),
			8+rng.Intn(10), rng.Intn(60), 0, 0, time.UTC)

		stamps := make(map[string]time.Time, len(columns))
		for j, col := range columns {
			if j > 0 && rng.Float64() < 0.1 {
				continue
			}
			current = current.Add(time.Duration(15+rng.Intn(106)) * time.Minute)
			stamps[col] = current.Add(time.Duration(rng.Intn(1000)) * time.Millisecond)
		}

		if i%3 == 0 && len(columns) > 3 {
			for _, col := range columns[len(columns)/2:] {
				if ts, ok := stamps[col]; ok {
					stamps[col] = ts.AddDate(0, 0, 2+rng.Intn(4))
				}
			}
		}

		row := make([]string, 0, len(header))
		row = append(row, fmt.Sprintf("%d", 10000+i))
		for _, col := range columns {
			if ts, ok := stamps[col]; ok {
				row = append(row, ts.Format("2006-01-02 15:04:05.000"))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}

// WriteCSV writes generated records to path.
func WriteCSV(path string, opts GeneratorOptions) error {
	header, rows := Records(opts)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

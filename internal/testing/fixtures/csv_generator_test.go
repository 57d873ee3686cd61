package fixtures

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/timeline-viz/internal/data/source"
)

func TestRecordsDeterministicWithSeed(t *testing.T) {
	opts := GeneratorOptions{Entities: 6, Type: "order", Seed: 42}

	header1, rows1 := Records(opts)
	header2, rows2 := Records(opts)

	assert.Equal(t, header1, header2)
	assert.Equal(t, rows1, rows2)
	assert.Equal(t, "order_id", header1[0])
	assert.Len(t, rows1, 6)
}

func TestRecordsColumnsPerType(t *testing.T) {
	header, _ := Records(GeneratorOptions{Entities: 1, Type: "patient", Seed: 1})
	assert.Equal(t, "patient_id", header[0])
	assert.Contains(t, header, "discharged_utc")

	header, _ = Records(GeneratorOptions{Entities: 1, Type: "unknown-type", Seed: 1})
	assert.Equal(t, "unknown-type_id", header[0])
	assert.Contains(t, header, "created_at_utc")
}

func TestWriteCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, WriteCSV(path, GeneratorOptions{Entities: 4, Seed: 7}))

	table, err := source.ReadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, "entity_id", table.Columns[0])
	assert.Len(t, table.Rows, 4)
	// First timestamp column is never skipped.
	for _, row := range table.Rows {
		assert.NotEmpty(t, row["created_at_utc"])
	}
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeColumn(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		suffixes []string
		expected string
	}{
		{"strips utc suffix", "created_at_utc", nil, "Created At"},
		{"strips at suffix", "shipped_at", nil, "Shipped"},
		{"strips date suffix", "ship_date", nil, "Ship"},
		{"only one suffix removed", "updated_at_time", nil, "Updated At"},
		{"hyphens become spaces", "first-event_at", nil, "First Event"},
		{"custom suffixes", "created_ts", []string{"_ts"}, "Created"},
		{"custom suffixes skip defaults", "created_at", []string{"_ts"}, "Created At"},
		{"case preserved before titling", "Created_AT", nil, "Created"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HumanizeColumn(tt.column, tt.suffixes))
		})
	}
}

func TestSanitizeID(t *testing.T) {
	assert.Equal(t, "order_1001", SanitizeID("order 1001"))
	assert.Equal(t, "a_b_c", SanitizeID("a/b:c"))
	assert.Equal(t, "10001", SanitizeID("10001"))
	assert.Equal(t, "", SanitizeID(""))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "abcd", PadRight("abcd", 2))
}

package util

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the formats tried when parsing a cell value, most
// common first. Go's parser accepts trailing fractional seconds even when the
// layout omits them, so only distinct shapes need an entry.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
	"02-Jan-2006 15:04:05",
	"02-Jan-2006",
	"Jan 02, 2006 15:04:05",
	"Jan 02, 2006",
}

// ParseTimestamp parses a timestamp string against the supported layouts.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, fmt.Errorf("empty value")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format")
}

// FormatTimestamp renders a timestamp for label display with millisecond
// precision, matching the precision of typical event exports.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000")
}

// DaysBetween returns the gap between two instants in fractional days.
func DaysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}

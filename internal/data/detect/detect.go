// Package detect identifies timestamp-bearing columns by naming convention.
package detect

import "strings"

var (
	timestampSuffixes  = []string{"_utc", "_at", "_time", "_date"}
	timestampPrefixes  = []string{"date", "time"}
	timestampFragments = []string{"timestamp", "datetime"}
)

// Columns returns the subset of names that look like timestamp columns,
// preserving the original column order.
func Columns(names []string) []string {
	var matched []string
	for _, name := range names {
		if IsTimestampColumn(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// IsTimestampColumn reports whether a column name matches a recognized
// timestamp-naming pattern. Matching is case-insensitive.
func IsTimestampColumn(name string) bool {
	lower := strings.ToLower(name)

	for _, suffix := range timestampSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, fragment := range timestampFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	for _, prefix := range timestampPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

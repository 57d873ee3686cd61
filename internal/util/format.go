package util

import (
	"strings"
	"unicode"
)

// DefaultLabelSuffixes are stripped from column names when deriving display
// labels (created_at_utc -> "Created At" -> "Created").
var DefaultLabelSuffixes = []string{"_utc", "_at", "_time", "_date"}

// HumanizeColumn converts a column name to a human-readable label: one
// matching suffix is removed, underscores and hyphens become spaces, and the
// result is title-cased. A nil removeSuffixes uses DefaultLabelSuffixes.
func HumanizeColumn(column string, removeSuffixes []string) string {
	if removeSuffixes == nil {
		removeSuffixes = DefaultLabelSuffixes
	}

	name := column
	lower := strings.ToLower(name)
	for _, suffix := range removeSuffixes {
		if strings.HasSuffix(lower, strings.ToLower(suffix)) {
			name = name[:len(name)-len(suffix)]
			break
		}
	}

	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// SanitizeID converts an entity id into a filesystem-safe filename fragment.
// Every non-alphanumeric rune becomes an underscore.
func SanitizeID(id string) string {
	var b strings.Builder
	b.Grow(len(id))
	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Terminal color sequences for the batch summary output.
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorBold   = "\033[1m"
)

// GetDisplayWidth calculates the actual display width of a string, accounting
// for wide runes and emojis.
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads text with spaces to the given display width.
func PadRight(text string, width int) string {
	gap := width - GetDisplayWidth(text)
	if gap <= 0 {
		return text
	}
	return text + strings.Repeat(" ", gap)
}

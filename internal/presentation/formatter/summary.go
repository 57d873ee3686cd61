// Package formatter prints batch summaries for the CLI.
package formatter

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/util"
)

// Format selects the summary output style.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// PrintSummary writes the batch result to w. colored enables ANSI colors for
// interactive terminals; it is ignored for JSON output.
func PrintSummary(w io.Writer, s *model.Summary, format Format, colored bool) error {
	switch format {
	case FormatJSON:
		data, err := sonic.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatText, "":
		return printText(w, s, colored)

	default:
		return fmt.Errorf("unsupported summary format %q", format)
	}
}

func printText(w io.Writer, s *model.Summary, colored bool) error {
	paint := func(code, text string) string {
		if !colored {
			return text
		}
		return code + text + util.ColorReset
	}

	if _, err := fmt.Fprintf(w, "%s %d\n", paint(util.ColorGreen, "Rendered:"), s.Rendered); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s  %d\n", paint(util.ColorYellow, "Skipped:"), len(s.Skipped)); err != nil {
		return err
	}

	idWidth := 0
	for _, sk := range s.Skipped {
		if w := util.GetDisplayWidth(sk.ID); w > idWidth {
			idWidth = w
		}
	}
	for _, sk := range s.Skipped {
		line := fmt.Sprintf("  - %s  %s", util.PadRight(sk.ID, idWidth), sk.Reason)
		if _, err := fmt.Fprintln(w, paint(util.ColorYellow, line)); err != nil {
			return err
		}
	}
	return nil
}

// Package render draws a layout plan onto a canvas backend.
package render

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
)

// Anchor controls horizontal text alignment relative to the x coordinate.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Canvas is the minimal draw-primitives surface the renderer needs. Colors
// are hex strings ("#rrggbb"). Implementations: PNGCanvas, SVGCanvas, and the
// recording canvas used in tests.
type Canvas interface {
	Line(x1, y1, x2, y2 float64, color string, width float64)
	Circle(x, y, r float64, fill, stroke string, strokeWidth float64)
	Rect(x, y, w, h float64, fill, stroke string)
	Text(x, y float64, s, color string, size float64, anchor Anchor)
	Save(dst io.Writer) error
}

// NewCanvas builds a canvas for the given image format.
func NewCanvas(format string, width, height int, background string) (Canvas, error) {
	switch format {
	case "png":
		return NewPNGCanvas(width, height), nil
	case "svg":
		return NewSVGCanvas(width, height, background), nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
}

// EstimateTextWidth approximates rendered text width in pixels from the
// display cell width of the string. The SVG backend has no font metrics at
// generation time, so both backends size label boxes with the same estimate.
func EstimateTextWidth(s string, fontSize float64) float64 {
	return float64(runewidth.StringWidth(s)) * fontSize * 0.6
}

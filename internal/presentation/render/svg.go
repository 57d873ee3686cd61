package render

import (
	"fmt"
	"io"
	"strings"
)

const svgFontFamily = "Arial, sans-serif"

// SVGCanvas accumulates SVG elements and writes a complete document on Save.
type SVGCanvas struct {
	b strings.Builder
}

// NewSVGCanvas creates an SVG canvas of the given pixel size with a solid
// background.
func NewSVGCanvas(width, height int, background string) *SVGCanvas {
	c := &SVGCanvas{}
	c.b.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height))
	if background == "" {
		background = "#ffffff"
	}
	c.b.WriteString(fmt.Sprintf(`  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", background))
	return c
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, col string, width float64) {
	c.b.WriteString(fmt.Sprintf(
		`  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
		x1, y1, x2, y2, col, width))
}

func (c *SVGCanvas) Circle(x, y, r float64, fill, stroke string, strokeWidth float64) {
	c.b.WriteString(fmt.Sprintf(
		`  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x, y, r, fill, stroke, strokeWidth))
}

func (c *SVGCanvas) Rect(x, y, w, h float64, fill, stroke string) {
	c.b.WriteString(fmt.Sprintf(
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s"/>`+"\n",
		x, y, w, h, fill, stroke))
}

func (c *SVGCanvas) Text(x, y float64, s, col string, size float64, anchor Anchor) {
	c.b.WriteString(fmt.Sprintf(
		`  <text x="%.1f" y="%.1f" text-anchor="%s" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
		x, y, svgAnchor(anchor), svgFontFamily, size, col, escapeXML(s)))
}

// Save writes the document, closing the root element.
func (c *SVGCanvas) Save(dst io.Writer) error {
	if _, err := io.WriteString(dst, c.b.String()); err != nil {
		return err
	}
	_, err := io.WriteString(dst, "</svg>\n")
	return err
}

func svgAnchor(a Anchor) string {
	switch a {
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	default:
		return "start"
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
	return r.Replace(s)
}

// Package scheme holds the color configuration for timeline rendering.
package scheme

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/bytedance/sonic"
)

// ColorScheme maps named visual roles to hex color values.
type ColorScheme struct {
	Line      string `json:"line" yaml:"line"`
	PointEdge string `json:"point_edge" yaml:"point_edge"`
	PointFace string `json:"point_face" yaml:"point_face"`
	Connector string `json:"connector" yaml:"connector"`
	LabelBg   string `json:"label_bg" yaml:"label_bg"`
	LabelEdge string `json:"label_edge" yaml:"label_edge"`
	Slashes   string `json:"slashes" yaml:"slashes"`
	Title     string `json:"title" yaml:"title"`
}

// Default returns the stock blue/yellow scheme.
func Default() ColorScheme {
	return FromBase("#0046be", "#ffe000")
}

// FromBase builds a complete scheme from a primary and an accent color.
func FromBase(base, accent string) ColorScheme {
	return ColorScheme{
		Line:      base,
		PointEdge: base,
		PointFace: accent,
		Connector: base,
		LabelBg:   "#f5f5f5",
		LabelEdge: base,
		Slashes:   base,
		Title:     base,
	}
}

// FromMap overlays the given role->color entries on the default scheme.
// Unrecognized role names are rejected.
func FromMap(colors map[string]string) (ColorScheme, error) {
	cs := Default()
	for role, value := range colors {
		switch role {
		case "line":
			cs.Line = value
		case "point_edge":
			cs.PointEdge = value
		case "point_face":
			cs.PointFace = value
		case "connector":
			cs.Connector = value
		case "label_bg":
			cs.LabelBg = value
		case "label_edge":
			cs.LabelEdge = value
		case "slashes":
			cs.Slashes = value
		case "title":
			cs.Title = value
		default:
			return ColorScheme{}, fmt.Errorf("unknown color role %q", role)
		}
	}
	return cs, nil
}

// ParseJSON decodes a JSON object of role->color overrides and merges it over
// the default scheme.
func ParseJSON(s string) (ColorScheme, error) {
	var colors map[string]string
	if err := sonic.Unmarshal([]byte(s), &colors); err != nil {
		return ColorScheme{}, fmt.Errorf("invalid color scheme JSON: %w", err)
	}
	return FromMap(colors)
}

// ParseHex converts "#rrggbb" or "#rgb" into an RGBA color. Unparseable
// values fall back to black so a bad color never aborts a render.
func ParseHex(s string) color.RGBA {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{A: 255}
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{A: 255}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

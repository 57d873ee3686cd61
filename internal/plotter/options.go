// Package plotter orchestrates the extract -> segment -> layout -> render
// pipeline for single entities and CSV batches.
package plotter

import (
	"github.com/penwyp/timeline-viz/internal/core/scheme"
	"github.com/penwyp/timeline-viz/internal/presentation/render"
)

// Options configures a plot run. The zero value means "use defaults" for
// every field; a negative ThresholdDays is rejected when segmenting.
type Options struct {
	TimestampColumns []string
	DetectColumns    bool
	IDColumn         string
	EntityName       string
	ThresholdDays    float64
	Colors           scheme.ColorScheme
	Title            string
	LabelMappings    map[string]string
	RemoveSuffixes   []string
	OutputDir        string
	MaxEntities      int
	ImageFormat      string // "png" or "svg"
	Geometry         render.Geometry
}

func (o *Options) normalize() {
	if o.EntityName == "" {
		o.EntityName = "Entity"
	}
	if o.ThresholdDays == 0 {
		o.ThresholdDays = 1
	}
	if o.ImageFormat == "" {
		o.ImageFormat = "png"
	}
	if o.Colors == (scheme.ColorScheme{}) {
		o.Colors = scheme.Default()
	}
	if o.OutputDir == "" {
		o.OutputDir = "timelines"
	}
}

package render

import (
	"io"

	"github.com/penwyp/timeline-viz/internal/core/scheme"
	"github.com/penwyp/timeline-viz/internal/presentation/layout"
	"github.com/penwyp/timeline-viz/internal/util"
)

// Geometry holds the pixel dimensions of the output image.
type Geometry struct {
	Width     int
	Height    int
	PointSize float64
	FontSize  float64
}

// DefaultGeometry matches a 15x5 inch figure at 100 DPI.
func DefaultGeometry() Geometry {
	return Geometry{Width: 1500, Height: 500, PointSize: 8, FontSize: 13}
}

const labelTextColor = "#1a1a1a"

// Renderer draws a layout plan onto a canvas.
type Renderer struct {
	canvas Canvas
	colors scheme.ColorScheme
	geom   Geometry
}

// New creates a renderer for the given canvas, colors and geometry.
func New(canvas Canvas, colors scheme.ColorScheme, geom Geometry) *Renderer {
	if geom.Width <= 0 || geom.Height <= 0 {
		geom = DefaultGeometry()
	}
	if geom.PointSize <= 0 {
		geom.PointSize = DefaultGeometry().PointSize
	}
	if geom.FontSize <= 0 {
		geom.FontSize = DefaultGeometry().FontSize
	}
	return &Renderer{canvas: canvas, colors: colors, geom: geom}
}

// Draw renders the axis, event points, connectors, labels and break markers.
func (r *Renderer) Draw(plan *layout.Plan, title string) {
	if title != "" {
		r.canvas.Text(16, r.geom.FontSize+14, title, r.colors.Title, r.geom.FontSize+4, AnchorStart)
	}

	axisY := float64(r.geom.Height) / 2

	// The axis is drawn per slot so it visibly breaks at the gap.
	for _, slot := range plan.Slots {
		r.canvas.Line(r.px(slot.Start), axisY, r.px(slot.End), axisY, r.colors.Line, 2)
	}

	connectorLen := float64(r.geom.Height) * 0.16
	for _, entry := range plan.Entries {
		x := r.px(entry.X)
		labelY := axisY - connectorLen
		if entry.Side == layout.SideBelow {
			labelY = axisY + connectorLen
		}

		r.canvas.Line(x, axisY, x, labelY, r.colors.Connector, 1.2)
		r.canvas.Circle(x, axisY, r.geom.PointSize, r.colors.PointFace, r.colors.PointEdge, 1.5)
		r.drawLabel(x, labelY, entry)
	}

	for _, bx := range plan.Breaks {
		r.drawBreakMarker(r.px(bx), axisY)
	}
}

// Save persists the drawn image to dst.
func (r *Renderer) Save(dst io.Writer) error {
	return r.canvas.Save(dst)
}

// px maps a normalized axis coordinate to pixels inside the horizontal margins.
func (r *Renderer) px(x float64) float64 {
	const margin = 40.0
	return margin + x*(float64(r.geom.Width)-2*margin)
}

func (r *Renderer) drawLabel(x, labelY float64, entry layout.Entry) {
	name := entry.Event.Label
	stamp := util.FormatTimestamp(entry.Event.Timestamp)

	const padX, padY = 8.0, 5.0
	lineH := r.geom.FontSize + 4
	boxW := EstimateTextWidth(name, r.geom.FontSize) + 2*padX
	if w := EstimateTextWidth(stamp, r.geom.FontSize) + 2*padX; w > boxW {
		boxW = w
	}
	boxH := 2*lineH + 2*padY

	boxTop := labelY
	if entry.Side == layout.SideAbove {
		boxTop = labelY - boxH
	}

	r.canvas.Rect(x-boxW/2, boxTop, boxW, boxH, r.colors.LabelBg, r.colors.LabelEdge)
	r.canvas.Text(x, boxTop+padY+r.geom.FontSize, name, labelTextColor, r.geom.FontSize, AnchorMiddle)
	r.canvas.Text(x, boxTop+padY+r.geom.FontSize+lineH, stamp, labelTextColor, r.geom.FontSize, AnchorMiddle)
}

// drawBreakMarker draws the double slash that marks an elided time gap.
func (r *Renderer) drawBreakMarker(x, axisY float64) {
	const halfHeight, halfWidth, spacing = 9.0, 4.0, 4.0
	for _, offset := range []float64{-spacing, spacing} {
		r.canvas.Line(x+offset-halfWidth, axisY+halfHeight, x+offset+halfWidth, axisY-halfHeight,
			r.colors.Slashes, 2.5)
	}
}

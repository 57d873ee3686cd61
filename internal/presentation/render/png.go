package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/penwyp/timeline-viz/internal/core/scheme"
)

// PNGCanvas rasterizes primitives into an RGBA image. Text uses the fixed
// 7x13 bitmap face, so the size argument only influences layout estimates.
type PNGCanvas struct {
	img *image.RGBA
}

// NewPNGCanvas creates a white canvas of the given pixel size.
func NewPNGCanvas(width, height int) *PNGCanvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return &PNGCanvas{img: img}
}

// Line draws a straight line of the given stroke width.
func (c *PNGCanvas) Line(x1, y1, x2, y2 float64, col string, width float64) {
	rgba := scheme.ParseHex(col)
	dx, dy := x2-x1, y2-y1
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps < 1 {
		steps = 1
	}
	radius := math.Max(width/2, 0.5)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.dot(x1+dx*t, y1+dy*t, radius, rgba)
	}
}

// Circle draws a filled circle with a stroked edge.
func (c *PNGCanvas) Circle(x, y, r float64, fill, stroke string, strokeWidth float64) {
	fillCol := scheme.ParseHex(fill)
	strokeCol := scheme.ParseHex(stroke)
	inner := r - strokeWidth

	for py := int(y - r); py <= int(y+r)+1; py++ {
		for px := int(x - r); px <= int(x+r)+1; px++ {
			d := math.Hypot(float64(px)-x, float64(py)-y)
			if d > r {
				continue
			}
			if d > inner {
				c.img.SetRGBA(px, py, strokeCol)
			} else {
				c.img.SetRGBA(px, py, fillCol)
			}
		}
	}
}

// Rect draws a filled rectangle with a one-pixel border.
func (c *PNGCanvas) Rect(x, y, w, h float64, fill, stroke string) {
	rect := image.Rect(int(x), int(y), int(x+w), int(y+h))
	draw.Draw(c.img, rect, image.NewUniform(scheme.ParseHex(fill)), image.Point{}, draw.Src)

	c.Line(x, y, x+w, y, stroke, 1)
	c.Line(x, y+h, x+w, y+h, stroke, 1)
	c.Line(x, y, x, y+h, stroke, 1)
	c.Line(x+w, y, x+w, y+h, stroke, 1)
}

// Text draws a single line of text with its baseline at y.
func (c *PNGCanvas) Text(x, y float64, s, col string, size float64, anchor Anchor) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(scheme.ParseHex(col)),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s).Ceil()

	px := int(x)
	switch anchor {
	case AnchorMiddle:
		px -= width / 2
	case AnchorEnd:
		px -= width
	}
	d.Dot = fixed.Point26_6{X: fixed.I(px), Y: fixed.I(int(y))}
	d.DrawString(s)
}

// Save encodes the canvas as PNG.
func (c *PNGCanvas) Save(dst io.Writer) error {
	return png.Encode(dst, c.img)
}

func (c *PNGCanvas) dot(x, y, radius float64, col color.RGBA) {
	for py := int(y - radius); py <= int(y+radius)+1; py++ {
		for px := int(x - radius); px <= int(x+radius)+1; px++ {
			if math.Hypot(float64(px)-x, float64(py)-y) <= radius {
				c.img.SetRGBA(px, py, col)
			}
		}
	}
}

package render

import (
	"bytes"
	"errors"
	"image/png"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/timeline-viz/internal/core/model"
	"github.com/penwyp/timeline-viz/internal/core/scheme"
	"github.com/penwyp/timeline-viz/internal/presentation/layout"
)

// recordingCanvas captures primitive calls instead of drawing.
type recordingCanvas struct {
	lines   []string // color of each line drawn
	circles int
	rects   int
	texts   []string
	saveErr error
	saved   bool
}

func (c *recordingCanvas) Line(x1, y1, x2, y2 float64, color string, width float64) {
	c.lines = append(c.lines, color)
}

func (c *recordingCanvas) Circle(x, y, r float64, fill, stroke string, strokeWidth float64) {
	c.circles++
}

func (c *recordingCanvas) Rect(x, y, w, h float64, fill, stroke string) {
	c.rects++
}

func (c *recordingCanvas) Text(x, y float64, s, color string, size float64, anchor Anchor) {
	c.texts = append(c.texts, s)
}

func (c *recordingCanvas) Save(dst io.Writer) error {
	c.saved = true
	return c.saveErr
}

func testPlan() *layout.Plan {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	segments := []model.Segment{
		{Events: []model.Event{
			{Label: "Created", Column: "created_at", Timestamp: base},
			{Label: "Shipped", Column: "shipped_at", Timestamp: base.Add(2 * time.Hour)},
		}},
		{Events: []model.Event{
			{Label: "Delivered", Column: "delivered_at", Timestamp: base.Add(60 * 24 * time.Hour)},
		}},
	}
	return layout.NewPlan(segments)
}

func TestRendererDrawCounts(t *testing.T) {
	canvas := &recordingCanvas{}
	r := New(canvas, scheme.Default(), DefaultGeometry())

	plan := testPlan()
	r.Draw(plan, "Order Timeline - 1001")

	// One point and one label box per event.
	assert.Equal(t, 3, canvas.circles)
	assert.Equal(t, 3, canvas.rects)

	// Axis per slot, connector per event, two slashes per break.
	expectedLines := len(plan.Slots) + len(plan.Entries) + 2*len(plan.Breaks)
	assert.Len(t, canvas.lines, expectedLines)

	slashes := 0
	for _, color := range canvas.lines {
		if color == scheme.Default().Slashes {
			slashes++
		}
	}
	assert.GreaterOrEqual(t, slashes, 2*len(plan.Breaks))

	// Title plus two text lines per label.
	assert.Len(t, canvas.texts, 1+2*len(plan.Entries))
	assert.Equal(t, "Order Timeline - 1001", canvas.texts[0])
	assert.Contains(t, canvas.texts, "Created")
	assert.Contains(t, canvas.texts, "2024-01-01 10:00:00.000")
}

func TestRendererSavePropagatesError(t *testing.T) {
	canvas := &recordingCanvas{saveErr: errors.New("disk full")}
	r := New(canvas, scheme.Default(), DefaultGeometry())

	err := r.Save(&bytes.Buffer{})
	assert.ErrorContains(t, err, "disk full")
	assert.True(t, canvas.saved)
}

func TestSVGCanvasOutput(t *testing.T) {
	canvas := NewSVGCanvas(800, 300, "#ffffff")
	canvas.Line(0, 150, 800, 150, "#0046be", 2)
	canvas.Circle(100, 150, 8, "#ffe000", "#0046be", 1.5)
	canvas.Text(100, 100, `a<b&"c"`, "#1a1a1a", 13, AnchorMiddle)

	var buf bytes.Buffer
	require.NoError(t, canvas.Save(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<svg"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	assert.Contains(t, out, `<line`)
	assert.Contains(t, out, `<circle`)
	assert.Contains(t, out, "a&lt;b&amp;&quot;c&quot;")
	assert.NotContains(t, out, `a<b`)
}

func TestPNGCanvasProducesDecodableImage(t *testing.T) {
	canvas := NewPNGCanvas(200, 100)
	canvas.Line(10, 50, 190, 50, "#0046be", 2)
	canvas.Circle(100, 50, 6, "#ffe000", "#0046be", 1.5)
	canvas.Rect(60, 10, 80, 30, "#f5f5f5", "#0046be")
	canvas.Text(100, 30, "hello", "#1a1a1a", 13, AnchorMiddle)

	var buf bytes.Buffer
	require.NoError(t, canvas.Save(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())
}

func TestNewCanvasUnknownFormat(t *testing.T) {
	_, err := NewCanvas("bmp", 100, 100, "#ffffff")
	assert.Error(t, err)
}

func TestEstimateTextWidthScalesWithLength(t *testing.T) {
	short := EstimateTextWidth("ab", 13)
	long := EstimateTextWidth("abcdef", 13)
	assert.Greater(t, long, short)
	assert.InDelta(t, 3*short, long, 1e-9)
}

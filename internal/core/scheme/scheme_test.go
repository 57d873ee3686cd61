package scheme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cs := Default()
	assert.Equal(t, "#0046be", cs.Line)
	assert.Equal(t, "#ffe000", cs.PointFace)
	assert.Equal(t, "#f5f5f5", cs.LabelBg)
}

func TestFromBase(t *testing.T) {
	cs := FromBase("#336699", "#ffcc00")
	assert.Equal(t, "#336699", cs.Line)
	assert.Equal(t, "#336699", cs.Connector)
	assert.Equal(t, "#336699", cs.Slashes)
	assert.Equal(t, "#ffcc00", cs.PointFace)
	assert.Equal(t, "#f5f5f5", cs.LabelBg)
}

func TestFromMap(t *testing.T) {
	cs, err := FromMap(map[string]string{"line": "#111111", "point_face": "#222222"})
	require.NoError(t, err)
	assert.Equal(t, "#111111", cs.Line)
	assert.Equal(t, "#222222", cs.PointFace)
	// Untouched roles keep defaults.
	assert.Equal(t, Default().LabelBg, cs.LabelBg)
}

func TestFromMapRejectsUnknownRole(t *testing.T) {
	_, err := FromMap(map[string]string{"axis": "#111111"})
	assert.ErrorContains(t, err, "unknown color role")
}

func TestParseJSON(t *testing.T) {
	cs, err := ParseJSON(`{"line":"#336699","title":"#000000"}`)
	require.NoError(t, err)
	assert.Equal(t, "#336699", cs.Line)
	assert.Equal(t, "#000000", cs.Title)

	_, err = ParseJSON(`{not json`)
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in       string
		expected color.RGBA
	}{
		{"#0046be", color.RGBA{R: 0x00, G: 0x46, B: 0xbe, A: 255}},
		{"#ffe000", color.RGBA{R: 0xff, G: 0xe0, B: 0x00, A: 255}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}},
		{"", color.RGBA{A: 255}},
		{"red", color.RGBA{A: 255}},
		{"#zzzzzz", color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseHex(tt.in), "input %q", tt.in)
	}
}

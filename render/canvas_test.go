package render

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{}
	lime  = colorful.MustParseHex("#a3e635")
)

func newUnitCanvas(w, h float64) *Canvas {
	c := NewCanvas(1, 1, white, 1)
	c.Resize(w, h)
	return c
}

func assertColor(t *testing.T, want, got colorful.Color) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, 1e-6, "R")
	assert.InDelta(t, want.G, got.G, 1e-6, "G")
	assert.InDelta(t, want.B, got.B, 1e-6, "B")
}

func TestCanvas_ResizeUsesScale(t *testing.T) {
	c := NewCanvas(8, 8, white, 0.3)
	c.Resize(640, 384)
	w, h := c.Bounds()
	assert.Equal(t, 80, w)
	assert.Equal(t, 48, h)

	// Partial pixels round up
	c.Resize(641, 1)
	w, h = c.Bounds()
	assert.Equal(t, 81, w)
	assert.Equal(t, 1, h)

	c.Resize(-5, 10)
	w, _ = c.Bounds()
	assert.Equal(t, 0, w)
}

func TestCanvas_ClearIsTransparent(t *testing.T) {
	c := newUnitCanvas(10, 10)
	c.FillCircle(5, 5, 3, black)
	require.Equal(t, 1.0, c.Alpha(5, 5))

	c.Clear()
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			require.Equal(t, 0.0, c.Alpha(x, y))
		}
	}
	assertColor(t, white, c.At(5, 5))
}

func TestCanvas_FillCircle(t *testing.T) {
	c := newUnitCanvas(20, 20)
	c.FillCircle(10, 10, 3, lime)

	assertColor(t, lime, c.At(10, 10))
	assertColor(t, lime, c.At(8, 10))
	assertColor(t, white, c.At(15, 10))
	assertColor(t, white, c.At(0, 0))
}

func TestCanvas_FillCircleSubPixelMarksCenter(t *testing.T) {
	c := NewCanvas(8, 8, white, 1)
	c.Resize(80, 80)
	c.FillCircle(20, 44, 1, black)

	assert.Equal(t, 1.0, c.Alpha(2, 5))
	assert.Equal(t, 0.0, c.Alpha(3, 5))
}

func TestCanvas_DrawOutsideIsClipped(t *testing.T) {
	c := newUnitCanvas(10, 10)
	assert.NotPanics(t, func() {
		c.FillCircle(-50, -50, 3, black)
		c.FillCircle(10.2, 5, 1, black)
		c.StrokeLine(-20, -20, 30, 30, 0.5, black, 1)
	})
	assert.Equal(t, 0.0, c.Alpha(-1, 0))
	assertColor(t, white, c.At(100, 100))
}

func TestCanvas_StrokeLineAlpha(t *testing.T) {
	c := newUnitCanvas(20, 5)
	c.StrokeLine(2, 2, 12, 2, 0.5, black, 0.5)

	for x := 2; x <= 12; x++ {
		assert.InDelta(t, 0.5, c.Alpha(x, 2), 1e-9, "x=%d", x)
	}
	assert.Equal(t, 0.0, c.Alpha(13, 2))
	assert.Equal(t, 0.0, c.Alpha(5, 3))

	// Black at half alpha over white
	assertColor(t, colorful.Color{R: 0.5, G: 0.5, B: 0.5}, c.At(5, 2))
}

func TestCanvas_StrokeLineAccumulates(t *testing.T) {
	c := newUnitCanvas(10, 10)
	c.StrokeLine(0, 5, 9, 5, 0.5, black, 0.5)
	c.StrokeLine(0, 5, 9, 5, 0.5, black, 0.5)
	assert.InDelta(t, 0.75, c.Alpha(4, 5), 1e-9)
}

func TestCanvas_StrokeLineZeroAlphaNoop(t *testing.T) {
	c := newUnitCanvas(10, 10)
	c.StrokeLine(0, 0, 9, 9, 0.5, black, 0)
	assert.Equal(t, 0.0, c.Alpha(4, 4))
}

func TestCanvas_StrokeLineDiagonalContinuous(t *testing.T) {
	c := newUnitCanvas(10, 10)
	c.StrokeLine(0.5, 0.5, 9.5, 9.5, 0.5, black, 1)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1.0, c.Alpha(i, i), "i=%d", i)
	}
}

func TestCanvas_LayerOpacity(t *testing.T) {
	c := NewCanvas(1, 1, white, 0.3)
	c.Resize(4, 4)
	c.FillCircle(1, 1, 0.1, black)

	got := c.At(1, 1)
	assert.InDelta(t, 0.7, got.R, 1e-9)
	assert.InDelta(t, 0.7, got.G, 1e-9)
	assert.InDelta(t, 0.7, got.B, 1e-9)
}

func TestCanvas_Image(t *testing.T) {
	c := newUnitCanvas(6, 4)
	c.FillCircle(0, 0, 0.1, black)

	img := c.Image()
	require.Equal(t, 6, img.Bounds().Dx())
	require.Equal(t, 4, img.Bounds().Dy())

	px := img.RGBAAt(0, 0)
	assert.Equal(t, uint8(0), px.R)
	assert.Equal(t, uint8(255), px.A)

	bg := img.RGBAAt(5, 3)
	assert.Equal(t, uint8(255), bg.R)
	assert.Equal(t, uint8(255), bg.G)
}

func TestBlendOver(t *testing.T) {
	got := blendOver(texel{}, black, 0.25)
	assert.Equal(t, 0.25, got.a)
	assertColor(t, black, got.c)

	full := blendOver(texel{c: white, a: 0.4}, lime, 1)
	assert.Equal(t, texel{c: lime, a: 1}, full)

	same := blendOver(texel{c: white, a: 0.4}, lime, 0)
	assert.Equal(t, texel{c: white, a: 0.4}, same)

	mix := blendOver(texel{c: white, a: 1}, black, 0.5)
	assert.Equal(t, 1.0, mix.a)
	assert.False(t, math.IsNaN(mix.c.R))
	assert.InDelta(t, 0.5, mix.c.R, 1e-9)
}

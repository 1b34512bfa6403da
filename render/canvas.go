package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Canvas is a raster drawing surface addressed in surface units
// Each pixel covers scaleX by scaleY units; drawing is composited on a
// transparent layer that is flattened over bg at the given opacity on read
type Canvas struct {
	width, height  int
	scaleX, scaleY float64
	bg             colorful.Color
	opacity        float64
	layer          []texel
}

// NewCanvas creates an empty canvas; call Resize before drawing
func NewCanvas(scaleX, scaleY float64, bg colorful.Color, opacity float64) *Canvas {
	if scaleX <= 0 {
		scaleX = 1
	}
	if scaleY <= 0 {
		scaleY = 1
	}
	return &Canvas{
		scaleX:  scaleX,
		scaleY:  scaleY,
		bg:      bg,
		opacity: clamp01(opacity),
	}
}

// Resize adjusts the raster to cover width x height surface units, reallocating only if capacity is insufficient
func (c *Canvas) Resize(width, height float64) {
	w := int(math.Ceil(width / c.scaleX))
	h := int(math.Ceil(height / c.scaleY))
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	size := w * h
	if cap(c.layer) < size {
		c.layer = make([]texel, size)
	} else {
		c.layer = c.layer[:size]
	}
	c.width, c.height = w, h
	c.Clear()
}

// Bounds returns raster dimensions in pixels
func (c *Canvas) Bounds() (width, height int) {
	return c.width, c.height
}

// Clear resets the layer to fully transparent using exponential copy
func (c *Canvas) Clear() {
	if len(c.layer) == 0 {
		return
	}
	c.layer[0] = texel{}
	for filled := 1; filled < len(c.layer); filled *= 2 {
		copy(c.layer[filled:], c.layer[:filled])
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

func (c *Canvas) plot(x, y int, col colorful.Color, a float64) {
	if !c.inBounds(x, y) {
		return
	}
	idx := y*c.width + x
	c.layer[idx] = blendOver(c.layer[idx], col, a)
}

// FillCircle paints an opaque disc; a disc smaller than a pixel still marks the pixel containing its center
func (c *Canvas) FillCircle(x, y, r float64, col colorful.Color) {
	cx, cy := x/c.scaleX, y/c.scaleY
	rx, ry := r/c.scaleX, r/c.scaleY

	c.plot(int(math.Floor(cx)), int(math.Floor(cy)), col, 1)
	if rx <= 0 || ry <= 0 {
		return
	}

	minX, maxX := int(math.Floor(cx-rx)), int(math.Floor(cx+rx))
	minY, maxY := int(math.Floor(cy-ry)), int(math.Floor(cy+ry))
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			dx := (float64(px) + 0.5 - cx) / rx
			dy := (float64(py) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				c.plot(px, py, col, 1)
			}
		}
	}
}

// StrokeLine draws a DDA line with the given alpha
// Lines thinner than a pixel are drawn as one-pixel hairlines
func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col colorful.Color, alpha float64) {
	alpha = clamp01(alpha)
	if alpha == 0 {
		return
	}

	px0, py0 := x0/c.scaleX, y0/c.scaleY
	px1, py1 := x1/c.scaleX, y1/c.scaleY
	dx, dy := px1-px0, py1-py0

	brush := int(math.Round(width / math.Min(c.scaleX, c.scaleY)))
	if brush < 1 {
		brush = 1
	}
	offset := (brush - 1) / 2

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	lastX, lastY := math.MinInt, math.MinInt
	for k := 0; k <= steps; k++ {
		t := 0.0
		if steps > 0 {
			t = float64(k) / float64(steps)
		}
		x := int(math.Floor(px0 + dx*t))
		y := int(math.Floor(py0 + dy*t))

		// Each pixel takes the line's alpha once
		if x == lastX && y == lastY {
			continue
		}
		lastX, lastY = x, y

		for by := 0; by < brush; by++ {
			for bx := 0; bx < brush; bx++ {
				c.plot(x+bx-offset, y+by-offset, col, alpha)
			}
		}
	}
}

// Alpha returns layer coverage at pixel (x, y), 0 outside the raster
func (c *Canvas) Alpha(x, y int) float64 {
	if !c.inBounds(x, y) {
		return 0
	}
	return c.layer[y*c.width+x].a
}

// At returns the flattened color at pixel (x, y); background outside the raster
func (c *Canvas) At(x, y int) colorful.Color {
	if !c.inBounds(x, y) {
		return c.bg
	}
	return flatten(c.bg, c.layer[y*c.width+x], c.opacity)
}

// Image flattens the canvas into an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			r, g, b := c.At(x, y).RGB255()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

package render

import (
	"github.com/lucasb-eyer/go-colorful"
)

// texel is one layer pixel: straight (non-premultiplied) color plus coverage
type texel struct {
	c colorful.Color
	a float64
}

// blendOver composites src with alpha a over dst (Porter-Duff source-over)
func blendOver(dst texel, src colorful.Color, a float64) texel {
	if a <= 0 {
		return dst
	}
	if a >= 1 {
		return texel{c: src, a: 1}
	}
	outA := a + dst.a*(1-a)
	// outC = (src*a + dst*dstA*(1-a)) / outA, expressed as a lerp from dst
	return texel{c: dst.c.BlendRgb(src, a/outA), a: outA}
}

// flatten composites a layer texel at the given layer opacity over an opaque background
func flatten(bg colorful.Color, t texel, opacity float64) colorful.Color {
	return bg.BlendRgb(t.c, clamp01(t.a*opacity)).Clamped()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

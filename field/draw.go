package field

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-field/parameter"
)

// Surface is the drawing target; coordinates are in surface units
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, c colorful.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c colorful.Color, alpha float64)
}

// Draw clears s, fills every particle, then strokes every link
func (f *Field) Draw(s Surface) {
	if s == nil {
		return
	}
	s.Clear()

	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.Pos.X, p.Pos.Y, p.Size, p.Color)
	}

	f.Links(func(a, b *Particle, alpha float64) {
		s.StrokeLine(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, parameter.LinkWidth, colorLink, alpha)
	})
}

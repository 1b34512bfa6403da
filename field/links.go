package field

import (
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// LinkAlpha returns line opacity for a pair at distance d, false if too far to link
func LinkAlpha(d float64) (float64, bool) {
	if d >= parameter.LinkDistance {
		return 0, false
	}
	return 1 - d/parameter.LinkDistance, true
}

// Links calls fn once per unordered pair closer than LinkDistance
// Exhaustive O(n²) enumeration
func (f *Field) Links(fn func(a, b *Particle, alpha float64)) {
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			if alpha, ok := LinkAlpha(vmath.V2FDist(a.Pos, b.Pos)); ok {
				fn(a, b, alpha)
			}
		}
	}
}

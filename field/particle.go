package field

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

var (
	colorLime  = colorful.MustParseHex(parameter.ParticleColorLime)
	colorBlack = colorful.MustParseHex(parameter.ParticleColorBlack)
	colorLink  = colorful.MustParseHex(parameter.LinkColor)
)

// Particle is a drifting point; size, density and color never change after creation
type Particle struct {
	Pos     vmath.Vec2F
	Base    vmath.Vec2F // Home position, resynced to Pos every tick
	Vel     vmath.Vec2F
	Size    float64
	Density float64
	Color   colorful.Color
}

// newParticle draws every attribute independently from rng
func newParticle(rng *rand.Rand, width, height float64) Particle {
	pos := vmath.Vec2F{X: rng.Float64() * width, Y: rng.Float64() * height}

	color := colorBlack
	if rng.Float64() > 0.5 {
		color = colorLime
	}

	return Particle{
		Pos:  pos,
		Base: pos,
		Vel: vmath.Vec2F{
			X: (rng.Float64() - 0.5) * parameter.ParticleSpeedSpan,
			Y: (rng.Float64() - 0.5) * parameter.ParticleSpeedSpan,
		},
		Size:    rng.Float64()*parameter.ParticleSizeSpan + parameter.ParticleSizeMin,
		Density: rng.Float64()*parameter.ParticleDensitySpan + parameter.ParticleDensityMin,
		Color:   color,
	}
}

// update advances the particle one tick
// Order matters: repulsion/relax, drift, home resync, reflection
func (p *Particle) update(ptr Pointer, width, height float64) {
	if ptr.Set {
		toPointer := vmath.V2FSub(ptr.Pos, p.Pos)
		dist := vmath.V2FMag(toPointer)

		if dist < ptr.Radius {
			// Coincident with pointer: no direction to push along
			if dist > 0 {
				force := (ptr.Radius - dist) / ptr.Radius
				push := vmath.V2FScale(toPointer, force*p.Density/dist)
				p.Pos = vmath.V2FSub(p.Pos, push)
			}
		} else {
			offset := vmath.V2FSub(p.Pos, p.Base)
			p.Pos = vmath.V2FSub(p.Pos, vmath.V2FScale(offset, 1/parameter.RelaxDivisor))
		}
	}

	p.Pos = vmath.V2FAdd(p.Pos, p.Vel)

	// Home tracks the particle rather than anchoring it
	p.Base = p.Pos

	outX, outY := vmath.V2FOutside(p.Pos, width, height)
	if outX {
		p.Vel.X = -p.Vel.X
	}
	if outY {
		p.Vel.Y = -p.Vel.Y
	}
}

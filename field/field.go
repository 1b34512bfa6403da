package field

import (
	"math/rand"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/vmath"
)

// Pointer is the last observed pointer position; Set is false until the first move
type Pointer struct {
	Pos    vmath.Vec2F
	Radius float64
	Set    bool
}

// Field is the simulator state owned by a single component instance
type Field struct {
	width, height float64
	pointer       Pointer
	particles     []Particle
	rng           *rand.Rand
}

// New creates an empty field drawing all randomness from rng
func New(rng *rand.Rand) *Field {
	return &Field{
		rng:     rng,
		pointer: Pointer{Radius: parameter.PointerRadius},
	}
}

// ParticleCount returns the population for a surface of the given width
func ParticleCount(width float64) int {
	if width < parameter.NarrowBreakpoint {
		return parameter.ParticleCountNarrow
	}
	return parameter.ParticleCountWide
}

// Resize sets the surface size and rebuilds the whole particle set
// Non-positive dimensions leave the field empty
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
	if width <= 0 || height <= 0 {
		f.particles = nil
		return
	}

	count := ParticleCount(width)
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = newParticle(f.rng, width, height)
	}
	f.particles = particles
}

// SetPointer records a pointer position in surface units
func (f *Field) SetPointer(x, y float64) {
	f.pointer.Pos = vmath.Vec2F{X: x, Y: y}
	f.pointer.Set = true
}

// Pointer returns the current pointer state
func (f *Field) Pointer() Pointer {
	return f.pointer
}

// Size returns the current surface size
func (f *Field) Size() (width, height float64) {
	return f.width, f.height
}

// Empty reports whether there is nothing to simulate
func (f *Field) Empty() bool {
	return len(f.particles) == 0
}

// Particles returns a copy of the current particle set
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Step advances every particle one tick
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].update(f.pointer, f.width, f.height)
	}
}

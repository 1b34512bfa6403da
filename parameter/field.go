package parameter

import "time"

// Particle Field
const (
	// PointerRadius is the distance (surface units) within which the pointer displaces particles
	PointerRadius = 150.0

	// LinkDistance is the pair distance below which a connection line is drawn
	LinkDistance = 120.0

	// LinkWidth is the stroke width of connection lines
	LinkWidth = 0.5

	// RelaxDivisor sets the per-tick fraction of home offset removed when the pointer is out of range
	RelaxDivisor = 10.0

	// NarrowBreakpoint is the surface width below which the narrow particle count applies
	NarrowBreakpoint = 768.0

	// ParticleCountNarrow/Wide are the field populations per viewport class
	ParticleCountNarrow = 25
	ParticleCountWide   = 60

	// ParticleSpeedSpan is the full range of per-axis drift, centered on zero
	ParticleSpeedSpan = 1.0

	// ParticleSizeMin/Span give radius in [min, min+span)
	ParticleSizeMin  = 1.0
	ParticleSizeSpan = 2.0

	// ParticleDensityMin/Span give repulsion scale in [min, min+span)
	ParticleDensityMin  = 1.0
	ParticleDensitySpan = 30.0
)

// Particle palette, picked 50/50 per particle
const (
	ParticleColorLime  = "#a3e635"
	ParticleColorBlack = "#000000"

	// LinkColor is the neutral connection line color
	LinkColor = "#000000"
)

// Backdrop Host
const (
	// FrameInterval is the redraw interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// CellWidth/CellHeight map one terminal cell to surface units
	CellWidth  = 8.0
	CellHeight = 16.0

	// PixelsPerCellY is the vertical raster resolution of one cell (upper half block)
	PixelsPerCellY = 2

	// BackgroundColor is the page color the layer is composited over
	BackgroundColor = "#f3f4f6"

	// LayerOpacity is the opacity of the whole particle layer over the background
	LayerOpacity = 0.3
)

// Input Queue
const (
	// EventQueueSize is the fixed capacity of the input ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

package engine

import (
	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/field"
)

// Host is the environment a component mounts into
// Listeners registered with the host may be invoked from any goroutine
type Host interface {
	// Size returns the viewport in surface units, ok=false if not yet known
	Size() (width, height float64, ok bool)
	AddListener(t event.EventType, fn event.Listener) event.ListenerID
	RemoveListener(id event.ListenerID)
}

// Target is the drawing surface a component renders into each tick
type Target interface {
	field.Surface

	// Resize matches the surface to new viewport dimensions in surface units
	Resize(width, height float64)

	// Present publishes the finished frame
	Present()
}

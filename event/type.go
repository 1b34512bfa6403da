package event

// EventType represents the kind of host input event
type EventType int

const (
	// EventPointerMove reports a pointer position in surface units
	// Trigger: host mouse motion | Payload: X, Y
	EventPointerMove EventType = iota

	// EventResize reports new surface dimensions in surface units
	// Trigger: host viewport resize | Payload: Width, Height
	EventResize
)

// String returns a readable event type name
func (t EventType) String() string {
	switch t {
	case EventPointerMove:
		return "pointer_move"
	case EventResize:
		return "resize"
	default:
		return "unknown"
	}
}

// Event is a plain value copied through the queue, never shared
type Event struct {
	Type EventType

	// Pointer position (EventPointerMove)
	X, Y float64

	// Surface size (EventResize)
	Width, Height float64
}

// PointerMove builds a pointer event
func PointerMove(x, y float64) Event {
	return Event{Type: EventPointerMove, X: x, Y: y}
}

// Resize builds a resize event
func Resize(width, height float64) Event {
	return Event{Type: EventResize, Width: width, Height: height}
}

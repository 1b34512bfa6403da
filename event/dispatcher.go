package event

import (
	"sync"
)

// ListenerID identifies a registered listener for removal
type ListenerID uint64

// Listener receives a host event synchronously on the host's input goroutine
type Listener func(Event)

// Dispatcher is an add/remove listener registry for hosts to embed
// Handlers for a type are invoked in registration order
type Dispatcher struct {
	mu        sync.RWMutex
	nextID    ListenerID
	listeners map[EventType][]entry
}

type entry struct {
	id ListenerID
	fn Listener
}

// AddListener registers fn for events of type t
func (d *Dispatcher) AddListener(t EventType, fn Listener) ListenerID {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.listeners == nil {
		d.listeners = make(map[EventType][]entry)
	}
	d.nextID++
	d.listeners[t] = append(d.listeners[t], entry{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveListener unregisters a listener; unknown ids are ignored
func (d *Dispatcher) RemoveListener(id ListenerID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for t, entries := range d.listeners {
		for i, e := range entries {
			if e.id != id {
				continue
			}
			d.listeners[t] = append(entries[:i:i], entries[i+1:]...)
			if len(d.listeners[t]) == 0 {
				delete(d.listeners, t)
			}
			return
		}
	}
}

// Dispatch invokes every listener registered for ev.Type
// The lock is released before calling out so listeners may remove themselves
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	entries := append([]entry(nil), d.listeners[ev.Type]...)
	d.mu.RUnlock()

	for _, e := range entries {
		e.fn(ev)
	}
}

// ListenerCount returns the number of listeners for t
func (d *Dispatcher) ListenerCount(t EventType) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[t])
}

// TotalListeners returns the number of listeners across all types
func (d *Dispatcher) TotalListeners() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, entries := range d.listeners {
		n += len(entries)
	}
	return n
}

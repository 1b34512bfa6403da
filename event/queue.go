package event

import (
	"sync/atomic"

	"github.com/lixenwraith/particle-field/parameter"
)

// Queue is a lock-free MPSC input queue for host events
// Pointer moves coalesce into a single latest-value slot; every other
// event goes through a ring buffer, so a pointer burst never evicts a resize.
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (host listeners)
//   - Consume: Single consumer (frame loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest ring events overwritten when full
type Queue struct {
	pointer   atomic.Pointer[Event] // Latest unconsumed pointer move
	events    [parameter.EventQueueSize]Event
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds event using lock-free CAS with published flags pattern
// A pointer move replaces any pending one. Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(ev Event) {
	if ev.Type == EventPointerMove {
		q.pointer.Store(&ev)
		return
	}

	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Consume returns pending ring events in FIFO order followed by the
// latest pointer move, if any
// Single-consumer design (frame loop). Checks published flags for safety
func (q *Queue) Consume() []Event {
	events := q.consumeRing()
	if ptr := q.pointer.Swap(nil); ptr != nil {
		events = append(events, *ptr)
	}
	return events
}

func (q *Queue) consumeRing() []Event {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.EventQueueSize {
			maxAvailable = parameter.EventQueueSize
			currentHead = currentTail - parameter.EventQueueSize
		}

		result := make([]Event, 0, maxAvailable+1)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.EventBufferMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Len returns approximate pending event count
func (q *Queue) Len() int {
	n := 0
	if q.pointer.Load() != nil {
		n = 1
	}
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return n
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		diff = parameter.EventQueueSize
	}
	return n + diff
}

package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/field"
)

// Options configures a Component; zero values select defaults
type Options struct {
	// Interval between frames, FrameInterval when zero
	Interval time.Duration

	// Rand seeds particle attributes, time-seeded when nil
	Rand *rand.Rand

	Logger *zap.Logger
}

// Component is the mountable particle backdrop
// All simulator state belongs to one mount: Mount builds it, Unmount drops it.
// Host listeners only enqueue input; the frame goroutine is the single writer.
type Component struct {
	host     Host
	target   Target
	interval time.Duration
	rng      *rand.Rand
	logger   *zap.Logger

	mu        sync.Mutex // Serializes Mount/Unmount
	field     *field.Field
	queue     *event.Queue
	listeners []event.ListenerID
	scheduler *FrameScheduler

	ticks atomic.Uint64
}

// NewComponent creates an unmounted component; target may be nil for a headless run
func NewComponent(host Host, target Target, opts Options) *Component {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Component{
		host:     host,
		target:   target,
		interval: opts.Interval,
		rng:      rng,
		logger:   logger,
	}
}

// Mount attaches listeners, initializes the field from the host viewport and starts the frame loop
// Mounting an already mounted component is a no-op
func (c *Component) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scheduler != nil {
		return
	}

	c.field = field.New(c.rng)
	c.queue = event.NewQueue()

	q := c.queue
	c.listeners = []event.ListenerID{
		c.host.AddListener(event.EventPointerMove, q.Push),
		c.host.AddListener(event.EventResize, q.Push),
	}

	width, height, ok := c.host.Size()
	if !ok {
		width, height = 0, 0
	}
	c.resize(width, height)

	c.scheduler = NewFrameScheduler(c.interval, c.Tick)
	c.scheduler.Start()

	c.logger.Debug("backdrop mounted",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Bool("sized", ok),
	)
}

// Unmount stops the frame loop, detaches listeners and releases the field
// Unmounting an unmounted component is a no-op
func (c *Component) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scheduler == nil {
		return
	}

	c.scheduler.Stop()
	frames := c.scheduler.Frames()
	c.scheduler = nil

	for _, id := range c.listeners {
		c.host.RemoveListener(id)
	}
	c.listeners = nil
	c.field = nil
	c.queue = nil

	c.logger.Debug("backdrop unmounted", zap.Uint64("frames", frames))
}

// Mounted reports whether the frame loop is running
func (c *Component) Mounted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheduler != nil && c.scheduler.Running()
}

// Ticks returns the number of ticks run across all mounts
func (c *Component) Ticks() uint64 {
	return c.ticks.Load()
}

// Tick applies queued input, advances the field and renders one frame
// Called by the frame loop; manual calls must not overlap it
func (c *Component) Tick() {
	f := c.field
	if f == nil {
		return
	}
	c.ticks.Add(1)

	c.applyInput()

	if f.Empty() {
		return
	}
	f.Step()

	if c.target != nil {
		f.Draw(c.target)
		c.target.Present()
	}
}

// applyInput drains the queue, keeping only the latest resize and pointer
// so the tick sees one consistent snapshot
func (c *Component) applyInput() {
	events := c.queue.Consume()
	if len(events) == 0 {
		return
	}

	var resize, pointer *event.Event
	for i := range events {
		switch events[i].Type {
		case event.EventResize:
			resize = &events[i]
		case event.EventPointerMove:
			pointer = &events[i]
		}
	}

	if resize != nil {
		c.resize(resize.Width, resize.Height)
		c.logger.Debug("backdrop resized",
			zap.Float64("width", resize.Width),
			zap.Float64("height", resize.Height),
		)
	}
	if pointer != nil {
		c.field.SetPointer(pointer.X, pointer.Y)
	}
}

func (c *Component) resize(width, height float64) {
	c.field.Resize(width, height)
	if c.target != nil {
		c.target.Resize(width, height)
	}
}

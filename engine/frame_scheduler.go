package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/particle-field/core"
	"github.com/lixenwraith/particle-field/parameter"
)

// FrameScheduler runs a frame callback on a fixed interval until stopped
// Each frame reschedules the next one; Stop is a one-way Running -> Stopped transition
type FrameScheduler struct {
	interval time.Duration
	frame    func()

	frames atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	started  atomic.Bool
}

// NewFrameScheduler creates a stopped scheduler; zero interval uses FrameInterval
func NewFrameScheduler(interval time.Duration, frame func()) *FrameScheduler {
	if interval <= 0 {
		interval = parameter.FrameInterval
	}
	return &FrameScheduler{
		interval: interval,
		frame:    frame,
		stopChan: make(chan struct{}),
	}
}

// Start begins the frame loop; a scheduler runs at most once
func (s *FrameScheduler) Start() {
	if !s.started.CompareAndSwap(false, true) {
		return
	}
	s.running.Store(true)
	s.wg.Add(1)
	core.Go(s.loop)
}

// Stop cancels the pending frame and waits for an in-flight frame to finish
// No frame runs after Stop returns
func (s *FrameScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.running.Store(false)
		close(s.stopChan)
		s.wg.Wait()
	})
}

// Running reports whether frames are being scheduled
func (s *FrameScheduler) Running() bool {
	return s.running.Load()
}

// Frames returns the number of completed frames
func (s *FrameScheduler) Frames() uint64 {
	return s.frames.Load()
}

func (s *FrameScheduler) loop() {
	defer s.wg.Done()

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-timer.C:
			// Stop may race a fired timer
			if !s.running.Load() {
				return
			}
			s.frame()
			s.frames.Add(1)
			timer.Reset(s.interval)
		}
	}
}

package terminal

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"github.com/lixenwraith/particle-field/event"
	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
)

// Options configures the terminal host
type Options struct {
	Background colorful.Color
	Opacity    float64
	ColorMode  ColorMode
	Logger     *zap.Logger
}

// Screen is a tcell-backed host: viewport size, input listeners and the render view
type Screen struct {
	event.Dispatcher

	screen   tcell.Screen
	view     *View
	logger   *zap.Logger
	finiOnce sync.Once
}

// New initializes s for full-screen drawing with mouse motion reporting
func New(s tcell.Screen, opts Options) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(toTcell(opts.Background, opts.ColorMode)))
	s.Clear()

	canvas := render.NewCanvas(
		parameter.CellWidth,
		parameter.CellHeight/parameter.PixelsPerCellY,
		opts.Background,
		opts.Opacity,
	)

	return &Screen{
		screen: s,
		view:   newView(s, canvas, opts.ColorMode),
		logger: logger,
	}, nil
}

// View returns the drawing target for this screen
func (s *Screen) View() *View {
	return s.view
}

// Size returns the viewport in surface units
func (s *Screen) Size() (float64, float64, bool) {
	cols, rows := s.screen.Size()
	if cols <= 0 || rows <= 0 {
		return 0, 0, false
	}
	return float64(cols) * parameter.CellWidth, float64(rows) * parameter.CellHeight, true
}

// cellCenter maps a cell to the surface-unit point at its center
func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * parameter.CellWidth, (float64(row) + 0.5) * parameter.CellHeight
}

// Pump reads terminal input and dispatches it to listeners
// Returns nil on a quit key, on Fini, or on Interrupt after ctx is done
func (s *Screen) Pump(ctx context.Context) error {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventMouse:
			x, y := cellCenter(ev.Position())
			s.Dispatch(event.PointerMove(x, y))

		case *tcell.EventResize:
			s.screen.Sync()
			if w, h, ok := s.Size(); ok {
				s.logger.Debug("terminal resized", zap.Float64("width", w), zap.Float64("height", h))
				s.Dispatch(event.Resize(w, h))
			}

		case *tcell.EventKey:
			if isQuit(ev) {
				s.logger.Debug("quit key")
				return nil
			}

		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		}
	}
}

// Interrupt wakes Pump so it can observe context cancellation
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Fini restores the terminal; safe to call more than once
func (s *Screen) Fini() {
	s.finiOnce.Do(s.screen.Fini)
}

// isQuit matches Esc, Ctrl-C and q
func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

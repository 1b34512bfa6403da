package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/particle-field/parameter"
	"github.com/lixenwraith/particle-field/render"
)

// halfBlock shows the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// View is the drawing target backed by a canvas and presented to the screen
type View struct {
	*render.Canvas
	screen tcell.Screen
	mode   ColorMode
}

func newView(screen tcell.Screen, canvas *render.Canvas, mode ColorMode) *View {
	return &View{Canvas: canvas, screen: screen, mode: mode}
}

// Present writes the flattened canvas to the screen and shows it
func (v *View) Present() {
	w, h := v.Bounds()
	rows := (h + parameter.PixelsPerCellY - 1) / parameter.PixelsPerCellY

	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < w; cx++ {
			top := v.At(cx, cy*parameter.PixelsPerCellY)
			bottom := v.At(cx, cy*parameter.PixelsPerCellY+1)
			style := tcell.StyleDefault.
				Foreground(toTcell(top, v.mode)).
				Background(toTcell(bottom, v.mode))
			v.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	v.screen.Show()
}

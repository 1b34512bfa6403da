// Package terminal hosts the particle backdrop on a full-screen terminal.
//
// Screen wraps a tcell.Screen: it reports the viewport in surface units
// (one cell is CellWidth x CellHeight units), turns mouse motion and
// resize events into listener callbacks, and owns a View that rasterizes
// the canvas into cells, two vertical pixels per cell via the upper half
// block glyph.
//
// Color output is truecolor or reduced to the xterm-256 palette.
package terminal

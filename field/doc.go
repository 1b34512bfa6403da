// Package field simulates the particle network backdrop.
//
// A Field owns a surface size, an optional pointer and a fixed population
// of drifting particles. Step advances every particle one tick (pointer
// repulsion, drift, home resync, boundary reflection) and Draw paints the
// particles and their proximity links onto any Surface.
//
// A Field is not safe for concurrent use; the owner applies input and
// steps it from a single goroutine.
package field

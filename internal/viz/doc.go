// Package viz presents a show in the terminal.
//
// [Model] is a bubbletea program that implements show.Frame on top of a
// colored braille [Canvas]. The 1920×1080 canvas of the show is scaled
// down to the terminal; each cell holds 2×4 dots.
//
// Key bindings:
//
//	up/down     particle count
//	left/right  explosion speed
//	w/s         particle lifespan
//	space       launch a rocket
//	esc         quit
//	q, ctrl+c   quit
package viz

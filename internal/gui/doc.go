// Package gui presents a show in a raylib window.
//
// [Window] implements show.Display: Clear begins a frame, Present ends it,
// and raylib's target FPS throttles the loop. Arrow keys, W/S, Space and
// Escape are translated into show events; closing the window is a quit.
package gui

package show

import (
	"image/color"
	"time"

	"github.com/san-kum/fireworks/internal/firework"
)

// Headless is a Display without a window. Time advances one tick per
// Present, so a run is fully deterministic for a given seed.
type Headless struct {
	// Surface receives all drawing; nil discards it.
	Surface firework.Surface
	// Script maps a tick number to the events delivered on that tick.
	Script map[int][]Event

	fps      int
	ticks    int
	deadline *Deadline
	closed   bool
}

func NewHeadless(fps int, limit time.Duration) *Headless {
	h := &Headless{fps: fps, Script: make(map[int][]Event)}
	h.deadline = NewDeadline(limit, h.Elapsed)
	return h
}

func (h *Headless) surface() firework.Surface {
	if h.Surface == nil {
		return firework.Discard
	}
	return h.Surface
}

func (h *Headless) Clear(c color.RGBA) { h.surface().Clear(c) }

func (h *Headless) Circle(x, y, r float64, c color.RGBA) { h.surface().Circle(x, y, r, c) }

func (h *Headless) Text(s string, x, y int, c color.RGBA) { h.surface().Text(s, x, y, c) }

func (h *Headless) Poll() []Event {
	events := append([]Event(nil), h.Script[h.ticks]...)
	return append(events, h.deadline.Poll()...)
}

func (h *Headless) Present() { h.ticks++ }

func (h *Headless) Close() error {
	h.closed = true
	return nil
}

// Elapsed returns simulated time.
func (h *Headless) Elapsed() time.Duration { return TickClock(h.ticks, h.fps) }

func (h *Headless) Ticks() int { return h.ticks }

func (h *Headless) Closed() bool { return h.closed }

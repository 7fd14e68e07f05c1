package show

import "time"

// Deadline produces a single EventTimeout once elapsed reaches limit.
// A zero limit never fires.
type Deadline struct {
	limit   time.Duration
	elapsed func() time.Duration
	fired   bool
}

func NewDeadline(limit time.Duration, elapsed func() time.Duration) *Deadline {
	return &Deadline{limit: limit, elapsed: elapsed}
}

func (d *Deadline) Poll() []Event {
	if d == nil || d.fired || d.limit <= 0 {
		return nil
	}
	if d.elapsed() >= d.limit {
		d.fired = true
		return []Event{EventTimeout}
	}
	return nil
}

// Limit returns the configured duration.
func (d *Deadline) Limit() time.Duration { return d.limit }

// TickClock converts a tick count at fps ticks per second to elapsed time.
func TickClock(ticks int, fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(ticks) * time.Second / time.Duration(fps)
}

package show

import "context"

// Display is a full presentation backend: a frame that can also be
// presented and released.
type Display interface {
	Frame
	// Present shows the finished frame and throttles to the tick rate.
	Present()
	Close() error
}

// Run steps s against d until a terminal event arrives or ctx is done,
// then closes d. Cancellation is checked once per tick; a cancelled
// context ends the show like a quit signal.
func Run(ctx context.Context, d Display, s *Show) error {
	for {
		if ctx.Err() != nil {
			if s.stopReason == EventNone {
				s.stopReason = EventQuit
			}
			break
		}
		running := s.Step(d)
		d.Present()
		if !running {
			break
		}
	}
	return d.Close()
}

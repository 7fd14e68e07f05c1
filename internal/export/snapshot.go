package export

import (
	"errors"
	"fmt"

	"github.com/san-kum/fireworks/internal/show"
)

var ErrTickOutOfRange = errors.New("export: snapshot tick must be at least 1")

// Snapshot runs s headless for tick ticks and returns the frame drawn by
// the last of them. Earlier frames are discarded.
func Snapshot(s *show.Show, tick int) (*SVG, error) {
	if tick < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrTickOutOfRange, tick)
	}

	opts := s.Options()
	svg := NewSVG(opts.Width, opts.Height)
	h := show.NewHeadless(1, 0)

	for s.Tick() < tick {
		if s.Tick() == tick-1 {
			h.Surface = svg
		}
		s.Step(h)
		h.Present()
	}
	return svg, nil
}

package firework

import "image/color"

// Surface is the drawing contract entities render onto.
type Surface interface {
	// Clear fills the whole canvas and starts a new frame.
	Clear(c color.RGBA)
	// Circle draws a filled circle centred on (x, y).
	Circle(x, y, radius float64, c color.RGBA)
	// Text draws a single line of text with its top-left corner at (x, y).
	Text(s string, x, y int, c color.RGBA)
}

type discard struct{}

func (discard) Clear(color.RGBA)                             {}
func (discard) Circle(float64, float64, float64, color.RGBA) {}
func (discard) Text(string, int, int, color.RGBA)            {}

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

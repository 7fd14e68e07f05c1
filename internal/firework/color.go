package firework

import "image/color"

// RGB is an opaque color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Darken subtracts n from every channel, flooring at 0.
func (c RGB) Darken(n uint8) RGB {
	return RGB{R: sub(c.R, n), G: sub(c.G, n), B: sub(c.B, n)}
}

// Brighten adds n to every channel, capping at 255.
func (c RGB) Brighten(n uint8) RGB {
	return RGB{R: add(c.R, n), G: add(c.G, n), B: add(c.B, n)}
}

// Alpha converts c to a color.RGBA with the given alpha.
func (c RGB) Alpha(a uint8) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Opaque converts c to a fully opaque color.RGBA.
func (c RGB) Opaque() color.RGBA {
	return c.Alpha(255)
}

func sub(v, n uint8) uint8 {
	if v < n {
		return 0
	}
	return v - n
}

func add(v, n uint8) uint8 {
	if int(v)+int(n) > 255 {
		return 255
	}
	return v + n
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Palette holds the star colors an explosion picks from.
var Palette = []RGB{
	{255, 215, 0},
	{255, 69, 0},
	{0, 191, 255},
	{50, 205, 50},
	{238, 130, 238},
}

// PickColor returns a random color from Palette.
func PickColor(r Rand) RGB {
	return Palette[r.Intn(len(Palette))]
}

// InPalette reports whether c is one of the Palette colors.
func InPalette(c RGB) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

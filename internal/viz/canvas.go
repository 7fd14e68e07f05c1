package viz

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille canvas with one color per cell. The last dot drawn
// into a cell decides its color.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]color.RGBA
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]color.RGBA, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]color.RGBA, w)
	}
	c.Clear()
	return c
}

// Set lights the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = col
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = color.RGBA{}
		}
	}
}

// FillCircle lights every dot within r of (cx, cy), sub-pixel coordinates.
func (c *Canvas) FillCircle(cx, cy, r int, col color.RGBA) {
	if r <= 0 {
		c.Set(cx, cy, col)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, col)
			}
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render returns the canvas with every run of same-colored cells wrapped
// in a lipgloss foreground style.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && c.Colors[i][j] == c.Colors[i][start] {
				continue
			}
			b.WriteString(styleFor(c.Colors[i][start]).Render(string(row[start:j])))
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func styleFor(col color.RGBA) lipgloss.Style {
	if col.A == 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(Hex(col)))
}

// Hex formats an opaque color as #rrggbb, scaling by alpha against black.
func Hex(col color.RGBA) string {
	scale := func(v uint8) uint8 { return uint8(int(v) * int(col.A) / 255) }
	return fmt.Sprintf("#%02x%02x%02x", scale(col.R), scale(col.G), scale(col.B))
}

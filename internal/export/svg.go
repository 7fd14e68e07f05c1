package export

import (
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"
)

// SVG is a firework.Surface that records one frame as an SVG document.
// Clear starts a new frame, so only the last frame drawn is kept.
type SVG struct {
	Width, Height int

	background color.RGBA
	body       strings.Builder
	elements   int
}

func NewSVG(width, height int) *SVG {
	return &SVG{Width: width, Height: height, background: color.RGBA{A: 255}}
}

func (s *SVG) Clear(c color.RGBA) {
	s.background = c
	s.body.Reset()
	s.elements = 0
}

func (s *SVG) Circle(x, y, r float64, c color.RGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.0f" cy="%.0f" r="%.0f" fill="%s"`, x, y, r, hex(c)))
	if c.A < 255 {
		s.body.WriteString(fmt.Sprintf(` fill-opacity="%.3f"`, float64(c.A)/255))
	}
	s.body.WriteString("/>\n")
	s.elements++
}

func (s *SVG) Text(text string, x, y int, c color.RGBA) {
	var esc strings.Builder
	xml.EscapeText(&esc, []byte(text))
	// y is the top of the text box
	s.body.WriteString(fmt.Sprintf(`<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="20" dominant-baseline="hanging">%s</text>
`, x, y, hex(c), esc.String()))
	s.elements++
}

// Elements returns the number of shapes drawn since the last Clear.
func (s *SVG) Elements() int { return s.elements }

func (s *SVG) String() string {
	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.Width, s.Height, s.Width, s.Height, hex(s.background)))

	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

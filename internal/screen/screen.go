// Package screen presents a show in an ebiten window.
//
// Ebiten drives its own loop through Update and Draw, so [Game] records
// the drawing a show tick produces during Update and replays it onto the
// screen image in Draw.
package screen

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/show"
)

type binding struct {
	key   ebiten.Key
	event show.Event
}

var bindings = []binding{
	{ebiten.KeyArrowUp, show.EventMoreParticles},
	{ebiten.KeyArrowDown, show.EventFewerParticles},
	{ebiten.KeyArrowLeft, show.EventSlower},
	{ebiten.KeyArrowRight, show.EventFaster},
	{ebiten.KeyW, show.EventLonger},
	{ebiten.KeyS, show.EventShorter},
	{ebiten.KeySpace, show.EventLaunch},
	{ebiten.KeyEscape, show.EventEscape},
}

type opKind uint8

const (
	opCircle opKind = iota
	opText
)

type op struct {
	kind    opKind
	x, y, r float64
	c       color.RGBA
	text    string
}

// Game adapts a show to ebiten.Game. It implements show.Frame.
type Game struct {
	show          *show.Show
	width, height int

	background color.RGBA
	ops        []op
	pending    []show.Event
	ticks      int
	tps        int
	deadline   *show.Deadline
}

func NewGame(s *show.Show, cfg *config.Config) *Game {
	g := &Game{
		show:   s,
		width:  cfg.Width,
		height: cfg.Height,
		ops:    make([]op, 0, 4096),
		tps:    cfg.FPS,
	}
	g.deadline = show.NewDeadline(cfg.Timeout(), func() time.Duration {
		return show.TickClock(g.ticks, g.tps)
	})
	return g
}

func (g *Game) Clear(c color.RGBA) {
	g.background = c
	g.ops = g.ops[:0]
}

func (g *Game) Circle(x, y, r float64, c color.RGBA) {
	g.ops = append(g.ops, op{kind: opCircle, x: x, y: y, r: r, c: c})
}

func (g *Game) Text(s string, x, y int, c color.RGBA) {
	g.ops = append(g.ops, op{kind: opText, x: float64(x), y: float64(y), c: c, text: s})
}

func (g *Game) Poll() []show.Event {
	events := g.pending
	g.pending = nil
	return append(events, g.deadline.Poll()...)
}

func (g *Game) collectInput() {
	if ebiten.IsWindowBeingClosed() {
		g.pending = append(g.pending, show.EventQuit)
	}
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.pending = append(g.pending, b.event)
		}
	}
}

func (g *Game) Update() error {
	g.collectInput()
	running := g.show.Step(g)
	g.ticks++
	if !running {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	for _, o := range g.ops {
		switch o.kind {
		case opCircle:
			vector.DrawFilledCircle(screen, float32(o.x), float32(o.y), float32(o.r), o.c, true)
		case opText:
			// The debug font is white only; the HUD is white.
			ebitenutil.DebugPrintAt(screen, o.text, int(o.x), int(o.y))
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the show ends.
func Run(s *show.Show, cfg *config.Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(NewGame(s, cfg)); err != nil {
		return fmt.Errorf("%w: %v", show.ErrDisplayUnavailable, err)
	}
	return nil
}

package viz

import (
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/show"
)

// TickMsg advances the show by one tick.
type TickMsg time.Time

var keyEvents = map[string]show.Event{
	"up":     show.EventMoreParticles,
	"down":   show.EventFewerParticles,
	"left":   show.EventSlower,
	"right":  show.EventFaster,
	"w":      show.EventLonger,
	"s":      show.EventShorter,
	" ":      show.EventLaunch,
	"esc":    show.EventEscape,
	"q":      show.EventQuit,
	"ctrl+c": show.EventQuit,
}

// Model is a bubbletea model running a show. It implements show.Frame.
type Model struct {
	show   *show.Show
	canvas *Canvas
	theme  Theme

	worldW, worldH int
	fps            int
	ticks          int
	hud            string
	pending        []show.Event
	deadline       *show.Deadline
	done           bool
}

func NewModel(s *show.Show, cfg *config.Config) *Model {
	m := &Model{
		show:   s,
		canvas: NewCanvas(80, 24),
		theme:  GetTheme(cfg.Theme),
		worldW: cfg.Width,
		worldH: cfg.Height,
		fps:    cfg.FPS,
	}
	m.deadline = show.NewDeadline(cfg.Timeout(), func() time.Duration {
		return show.TickClock(m.ticks, m.fps)
	})
	return m
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(m.fps, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if ev, ok := keyEvents[msg.String()]; ok {
			m.pending = append(m.pending, ev)
		}

	case tea.WindowSizeMsg:
		// two rows for the HUD and the help line
		m.canvas = NewCanvas(msg.Width, msg.Height-2)

	case TickMsg:
		if m.done {
			return m, nil
		}
		running := m.show.Step(m)
		m.ticks++
		if !running {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.hudStyle().Render(m.hud))
	b.WriteByte('\n')
	b.WriteString(m.canvas.Render())
	b.WriteString(m.theme.helpStyle().Render("↑/↓ particles  ←/→ speed  w/s lifespan  space launch  esc quit"))
	return b.String()
}

// Done reports whether the show has stopped.
func (m *Model) Done() bool { return m.done }

// Ticks returns the number of ticks run so far.
func (m *Model) Ticks() int { return m.ticks }

func (m *Model) Clear(color.RGBA) {
	m.canvas.Clear()
	m.hud = ""
}

// Circle scales world coordinates onto the braille dot grid.
func (m *Model) Circle(x, y, r float64, c color.RGBA) {
	sx := float64(m.canvas.Width*2) / float64(m.worldW)
	sy := float64(m.canvas.Height*4) / float64(m.worldH)
	m.canvas.FillCircle(
		int(math.Floor(x*sx)),
		int(math.Floor(y*sy)),
		int(math.Round(r*sx)),
		c,
	)
}

// Text keeps the HUD line; it is drawn above the canvas.
func (m *Model) Text(s string, x, y int, c color.RGBA) {
	if m.hud != "" {
		m.hud += "  "
	}
	m.hud += s
}

func (m *Model) Poll() []show.Event {
	events := m.pending
	m.pending = nil
	return append(events, m.deadline.Poll()...)
}

// Run starts the terminal program and blocks until the show ends.
func Run(s *show.Show, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: %v", show.ErrDisplayUnavailable, err)
	}
	return nil
}

package viz

import (
	"image/color"
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/show"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Duration = 1
	s := show.New(cfg.ShowOptions(), rand.New(rand.NewSource(1)))
	return NewModel(s, cfg)
}

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)
	red := color.RGBA{255, 0, 0, 255}

	c.Set(0, 0, red)
	c.Set(3, 3, red)
	c.Set(-1, 0, red)
	c.Set(4, 0, red)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("cell 0 = %U, want U+2801", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("cell 1 = %U, want U+2880", c.Grid[0][1])
	}
	if c.Colors[0][0] != red {
		t.Errorf("cell color not set: %v", c.Colors[0][0])
	}

	c.Clear()
	if c.String() != "⠀⠀\n" {
		t.Errorf("Clear left %q", c.String())
	}
}

func TestCanvas_FillCircle(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillCircle(4, 4, 0, color.RGBA{A: 255})

	lit := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r != blank {
				lit++
			}
		}
	}
	if lit != 1 {
		t.Errorf("radius 0 should light one cell, got %d", lit)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   color.RGBA
		want string
	}{
		{color.RGBA{255, 255, 255, 255}, "#ffffff"},
		{color.RGBA{255, 0, 128, 255}, "#ff0080"},
		{color.RGBA{200, 100, 0, 0}, "#000000"},
	}
	for _, tt := range tests {
		if got := Hex(tt.in); got != tt.want {
			t.Errorf("Hex(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestGetTheme_FallsBack(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("retro theme not found")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestModel_KeysBecomeEvents(t *testing.T) {
	m := newTestModel(t)

	keys := []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyRight},
		{Type: tea.KeyRunes, Runes: []rune{'w'}},
		{Type: tea.KeyRunes, Runes: []rune{'x'}},
	}
	for _, k := range keys {
		m.Update(k)
	}

	got := m.Poll()
	want := []show.Event{show.EventMoreParticles, show.EventFaster, show.EventLonger}
	if len(got) != len(want) {
		t.Fatalf("Poll() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestModel_TickStepsShow(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Fatal("running show should schedule the next tick")
	}
	if m.Ticks() != 1 || m.Done() {
		t.Fatalf("ticks=%d done=%v after one tick", m.Ticks(), m.Done())
	}
	if !strings.Contains(m.View(), "Particles: 50, Speed: 5, Lifespan: 100") {
		t.Errorf("HUD missing from view:\n%s", m.View())
	}
}

func TestModel_EscapeQuits(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := m.Update(TickMsg{})
	if !m.Done() || cmd == nil {
		t.Fatalf("escape should stop the show and quit, done=%v", m.Done())
	}
	if m.show.StopReason() != show.EventEscape {
		t.Errorf("StopReason() = %v, want escape", m.show.StopReason())
	}

	if _, cmd := m.Update(TickMsg{}); cmd != nil {
		t.Error("ticks after stop should be ignored")
	}
}

func TestModel_TimesOut(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 100 && !m.Done(); i++ {
		m.Update(TickMsg{})
	}
	if m.show.StopReason() != show.EventTimeout {
		t.Fatalf("StopReason() = %v, want timeout", m.show.StopReason())
	}
	if m.Ticks() != 61 {
		t.Errorf("expected 61 ticks for a one second show, got %d", m.Ticks())
	}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.canvas.Width != 100 || m.canvas.Height != 38 {
		t.Errorf("canvas = %dx%d, want 100x38", m.canvas.Width, m.canvas.Height)
	}

	m.Circle(1919, 1079, 3, color.RGBA{255, 255, 255, 255})
	m.Circle(0, 0, 3, color.RGBA{255, 255, 255, 255})
	if m.canvas.Grid[0][0] == blank {
		t.Error("circle at origin not drawn")
	}
}

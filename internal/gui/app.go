package gui

import (
	"image/color"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/fireworks/internal/config"
	"github.com/san-kum/fireworks/internal/show"
)

const (
	fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	fontSize = 24
)

// binding maps a raylib key to a show event. Order is the order events are
// delivered within a tick.
type binding struct {
	key   int32
	event show.Event
}

var bindings = []binding{
	{rl.KeyUp, show.EventMoreParticles},
	{rl.KeyDown, show.EventFewerParticles},
	{rl.KeyLeft, show.EventSlower},
	{rl.KeyRight, show.EventFaster},
	{rl.KeyW, show.EventLonger},
	{rl.KeyS, show.EventShorter},
	{rl.KeySpace, show.EventLaunch},
	{rl.KeyEscape, show.EventEscape},
}

// Window is a raylib-backed show.Display.
type Window struct {
	Font     rl.Font
	custom   bool
	deadline *show.Deadline
}

// initWindow opens the raylib window and sets the tick rate. Escape is
// handled as a show event, so raylib's own exit key is disabled.
func initWindow(cfg *config.Config) error {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	if !rl.IsWindowReady() {
		return show.ErrDisplayUnavailable
	}
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
	return nil
}

// loadFont loads Liberation Mono when the system has it and falls back to
// raylib's built-in font otherwise.
func loadFont() (rl.Font, bool) {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault(), false
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, true
}

// Open acquires the window. Failure is fatal for the caller.
func Open(cfg *config.Config) (*Window, error) {
	if err := initWindow(cfg); err != nil {
		return nil, err
	}
	font, custom := loadFont()
	w := &Window{Font: font, custom: custom}
	w.deadline = show.NewDeadline(cfg.Timeout(), elapsed)
	return w, nil
}

func elapsed() time.Duration {
	return time.Duration(rl.GetTime() * float64(time.Second))
}

// Clear begins a raylib frame and fills the background.
func (w *Window) Clear(c color.RGBA) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, c.A))
}

func (w *Window) Circle(x, y, radius float64, c color.RGBA) {
	rl.DrawCircle(int32(x), int32(y), float32(radius), rl.NewColor(c.R, c.G, c.B, c.A))
}

func (w *Window) Text(s string, x, y int, c color.RGBA) {
	rl.DrawTextEx(w.Font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, rl.NewColor(c.R, c.G, c.B, c.A))
}

func (w *Window) Poll() []show.Event {
	var events []show.Event
	if rl.WindowShouldClose() {
		events = append(events, show.EventQuit)
	}
	for _, b := range bindings {
		if rl.IsKeyPressed(b.key) {
			events = append(events, b.event)
		}
	}
	return append(events, w.deadline.Poll()...)
}

// Present ends the frame; raylib throttles to the target FPS here.
func (w *Window) Present() {
	rl.EndDrawing()
}

func (w *Window) Close() error {
	if w.custom {
		rl.UnloadFont(w.Font)
	}
	rl.CloseWindow()
	return nil
}

package display

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grit"
)

// Terminate can be returned from [App.Update] to stop [Run] cleanly.
var Terminate = errors.New("display: terminate")

// App is the game loop driven by [Run]: Update ticks at a fixed 60 Hz,
// Draw renders into the indexed framebuffer once per displayed frame.
type App interface {
	Update() error
	Draw(fb *grit.Bitmap)
}

// Config configures the window and framebuffer created by [Run]. Zero
// values pick VGA mode 13h defaults: 320x200 at 3x scale.
type Config struct {
	Title  string
	Width  int
	Height int
	// Scale is the integer window scale factor for the framebuffer.
	Scale int
	// ClearColor is the palette index the framebuffer is cleared to
	// before every Draw.
	ClearColor uint8
	// Debug enables once-per-second frame stats on stderr.
	Debug bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 320
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.Scale <= 0 {
		c.Scale = 3
	}
	if c.Title == "" {
		c.Title = "grit"
	}
	return c
}

type game struct {
	app    App
	screen *Screen
	cfg    Config
	fps    fpsCounter
}

func (g *game) Update() error {
	if err := g.app.Update(); err != nil {
		if errors.Is(err, Terminate) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *game) Draw(target *ebiten.Image) {
	fb := g.screen.Framebuffer()
	fb.ResetClipRegion()
	fb.Clear(g.cfg.ClearColor)
	g.app.Draw(fb)
	g.screen.Present(target)

	if g.cfg.Debug {
		g.fps.log()
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width * g.cfg.Scale, g.cfg.Height * g.cfg.Scale
}

// Run opens a window and drives app until Update returns [Terminate] or
// an error, or the window is closed.
func Run(app App, cfg Config) error {
	cfg = cfg.withDefaults()

	screen, err := NewScreen(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	err = ebiten.RunGame(&game{app: app, screen: screen, cfg: cfg})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

package hud

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig configures Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before the HUD draws. Nil leaves it cleared.
	Background color.Color
	// Debug enables Hud debug mode for the session. False leaves the mode as is.
	Debug bool
}

// game adapts a Hud to ebiten.Game.
type game struct {
	hud *Hud
	cfg RunConfig
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud.Hidden = !g.hud.Hidden
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.hud.Screenshot("hud")
	}
	g.hud.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.Background != nil {
		screen.Fill(g.cfg.Background)
	}
	g.hud.Draw(screen)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and draws h every frame until the window is closed.
// F1 toggles Hud.Hidden and F2 queues a screenshot.
func Run(h *Hud, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Title == "" {
		cfg.Title = "hud"
	}
	if cfg.Debug {
		h.SetDebugMode(true)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{hud: h, cfg: cfg})
}

package hud

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// HudConfig configures NewHud. The zero value is usable.
type HudConfig struct {
	// Vanilla supplies the render action for vanilla layer identifiers.
	// Identifiers without an entry draw nothing.
	Vanilla map[Identifier]DrawFunc

	// Registrations is fired once by NewHud. Defaults to LayerRegistrationEvent.
	Registrations *Event[LayerRegistrationFunc]

	// Renders is fired after every Draw. Defaults to HudRenderEvent.
	Renders *Event[HudRenderFunc]

	// Logger receives debug output. Defaults to a stderr logger at info level.
	Logger *log.Logger

	// ScreenshotDir is where Screenshot writes PNG files. Defaults to "screenshots".
	ScreenshotDir string
}

// Hud owns the layer tree and draws it once per frame.
type Hud struct {
	// Hidden hides every vanilla layer except the sleep overlay, along with
	// anything attached relative to them.
	Hidden bool

	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir string

	layers  *LayerList
	renders *Event[HudRenderFunc]
	logger  *log.Logger
	debug   bool
	frame   uint64
	faders  []*Fader

	screenshotQueue []string
}

// NewHud builds the vanilla layer tree and then fires the registration event
// with it. Any registration error aborts creation.
func NewHud(cfg HudConfig) (*Hud, error) {
	regs := cfg.Registrations
	if regs == nil {
		regs = LayerRegistrationEvent
	}
	renders := cfg.Renders
	if renders == nil {
		renders = HudRenderEvent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "hud", Level: log.InfoLevel})
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}

	h := &Hud{
		ScreenshotDir: dir,
		layers:        NewLayerList(),
		renders:       renders,
		logger:        logger,
	}
	h.layers.SetLogger(logger)

	if err := buildVanilla(h.layers, cfg.Vanilla, h.visible); err != nil {
		return nil, fmt.Errorf("build vanilla layers: %w", err)
	}
	if err := fireRegistration(regs, h.layers); err != nil {
		return nil, fmt.Errorf("register hud layers: %w", err)
	}
	logger.Debug("hud ready", "registrations", regs.Len())
	return h, nil
}

// Layers returns the root layer list.
func (h *Hud) Layers() *LayerList {
	return h.layers
}

// Track makes Update advance f every tick.
func (h *Hud) Track(f *Fader) {
	h.faders = append(h.faders, f)
}

// Update advances tracked faders by one tick.
func (h *Hud) Update() {
	dt := float32(tickDelta())
	for _, f := range h.faders {
		f.Update(dt)
	}
}

// Draw renders the layer tree onto screen, then fires the render event and
// writes any queued screenshots.
func (h *Hud) Draw(screen *ebiten.Image) {
	h.frame++
	tick := Tick{Frame: h.frame, Delta: tickDelta()}

	if h.debug {
		var stats debugStats
		t0 := time.Now()
		h.layers.render(screen, tick, &stats)
		stats.renderTime = time.Since(t0)
		t0 = time.Now()
		fireRender(h.renders, screen, tick)
		stats.callbackTime = time.Since(t0)
		h.debugLog(tick, stats)
	} else {
		h.layers.Render(screen, tick)
		fireRender(h.renders, screen, tick)
	}

	h.flushScreenshots(screen)
}

// SetDebugMode enables or disables debug mode. When enabled the logger is
// switched to debug level, so layer mutations and per-frame stats are logged.
func (h *Hud) SetDebugMode(enabled bool) {
	h.debug = enabled
	if enabled {
		h.logger.SetLevel(log.DebugLevel)
	} else {
		h.logger.SetLevel(log.InfoLevel)
	}
}

func (h *Hud) visible() bool {
	return !h.Hidden
}

// tickDelta returns the length of one update tick in seconds, or 0 when TPS
// is synced with FPS.
func tickDelta() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		return 0
	}
	return 1.0 / float64(tps)
}

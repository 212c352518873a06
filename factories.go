package hud

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Built-in layer factory identifiers.
var (
	TextFactory = MustParseIdentifier("hud:text")
	FPSFactory  = MustParseIdentifier("hud:fps")
	RectFactory = MustParseIdentifier("hud:rect")
)

// DefaultFactories returns a registry holding the built-in factories.
func DefaultFactories() *Registry[LayerFactory] {
	r := NewRegistry[LayerFactory]()
	// Built-in identifiers are distinct, so these cannot fail.
	_ = r.Register(TextFactory, newTextLayer)
	_ = r.Register(FPSFactory, newFPSLayer)
	_ = r.Register(RectFactory, newRectLayer)
	return r
}

type textOptions struct {
	X    int    `toml:"x"`
	Y    int    `toml:"y"`
	Text string `toml:"text"`
}

// newTextLayer prints a fixed string with the debug font.
func newTextLayer(opts LayerOptions) (DrawFunc, error) {
	var o textOptions
	if err := opts.Decode(&o); err != nil {
		return nil, err
	}
	if o.Text == "" {
		return nil, errors.New("text: missing text")
	}
	return func(screen *ebiten.Image, _ Tick) {
		ebitenutil.DebugPrintAt(screen, o.Text, o.X, o.Y)
	}, nil
}

type fpsOptions struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// newFPSLayer prints the current FPS and TPS.
func newFPSLayer(opts LayerOptions) (DrawFunc, error) {
	var o fpsOptions
	if err := opts.Decode(&o); err != nil {
		return nil, err
	}
	return func(screen *ebiten.Image, _ Tick) {
		msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, msg, o.X, o.Y)
	}, nil
}

type rectOptions struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Color  string  `toml:"color"`
}

// whitePixel is scaled and tinted to draw solid rectangles. Created on first
// use so the package can be loaded without a graphics context.
var whitePixel *ebiten.Image

// newRectLayer fills a solid rectangle.
func newRectLayer(opts LayerOptions) (DrawFunc, error) {
	o := rectOptions{Color: "#000000"}
	if err := opts.Decode(&o); err != nil {
		return nil, err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return nil, fmt.Errorf("rect: size %vx%v must be positive", o.Width, o.Height)
	}
	c, err := parseHexColor(o.Color)
	if err != nil {
		return nil, fmt.Errorf("rect: %w", err)
	}

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(o.Width, o.Height)
	op.GeoM.Translate(o.X, o.Y)
	op.ColorScale.ScaleWithColor(c)

	return func(screen *ebiten.Image, _ Tick) {
		if whitePixel == nil {
			whitePixel = ebiten.NewImage(1, 1)
			whitePixel.Fill(color.White)
		}
		screen.DrawImage(whitePixel, &op)
	}, nil
}

// parseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

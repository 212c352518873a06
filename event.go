package hud

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Event is an ordered list of handlers. Handlers run synchronously in the
// order they were registered.
type Event[H any] struct {
	handlers []H
}

// Register appends h to the event.
func (e *Event[H]) Register(h H) {
	e.handlers = append(e.handlers, h)
}

// Len returns the number of registered handlers.
func (e *Event[H]) Len() int {
	return len(e.handlers)
}

// each calls fn for every handler in registration order and stops at the
// first error, which is returned with the handler's position attached.
func (e *Event[H]) each(fn func(H) error) error {
	for i, h := range e.handlers {
		if err := fn(h); err != nil {
			return fmt.Errorf("handler %d: %w", i, err)
		}
	}
	return nil
}

// LayerRegistrationFunc adds, moves, replaces or removes layers. It runs once,
// while the HUD is being created.
type LayerRegistrationFunc func(layers *LayerList) error

// HudRenderFunc runs after the HUD has been drawn, every frame, including
// frames where the HUD is hidden.
type HudRenderFunc func(screen *ebiten.Image, tick Tick)

// LayerRegistrationEvent is the registration event used by NewHud when
// HudConfig.Registrations is nil.
var LayerRegistrationEvent = &Event[LayerRegistrationFunc]{}

// HudRenderEvent is the render event used by NewHud when HudConfig.Renders
// is nil.
var HudRenderEvent = &Event[HudRenderFunc]{}

// fireRegistration hands layers to every registration handler.
func fireRegistration(e *Event[LayerRegistrationFunc], layers *LayerList) error {
	return e.each(func(h LayerRegistrationFunc) error {
		return h(layers)
	})
}

// fireRender calls every render handler.
func fireRender(e *Event[HudRenderFunc], screen *ebiten.Image, tick Tick) {
	for _, h := range e.handlers {
		h(screen, tick)
	}
}

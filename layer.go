package hud

import "github.com/hajimehoshi/ebiten/v2"

// Tick is the frame-timing counter handed to every layer. It is passed
// through unchanged from Hud.Draw to each DrawFunc.
type Tick struct {
	// Frame counts Draw calls since the HUD was created, starting at 1.
	Frame uint64
	// Delta is the length of one update tick in seconds.
	Delta float64
}

// DrawFunc paints one layer onto screen.
type DrawFunc func(screen *ebiten.Image, tick Tick)

// Layer is an entry of a LayerList. The set of variants is closed: a Layer is
// either an *IdentifiedLayer or a *SubLayer.
type Layer interface {
	Render(screen *ebiten.Image, tick Tick)
	layer()
}

// IdentifiedLayer is a leaf layer: a DrawFunc with an identifier attached.
type IdentifiedLayer struct {
	id   Identifier
	draw DrawFunc
}

// NewLayer wraps draw in an identified layer. A nil draw renders nothing.
func NewLayer(id Identifier, draw DrawFunc) *IdentifiedLayer {
	return &IdentifiedLayer{id: id, draw: draw}
}

// ID returns the layer's identifier.
func (l *IdentifiedLayer) ID() Identifier {
	return l.id
}

// Render calls the wrapped DrawFunc.
func (l *IdentifiedLayer) Render(screen *ebiten.Image, tick Tick) {
	if l.draw != nil {
		l.draw(screen, tick)
	}
}

func (*IdentifiedLayer) layer() {}

// SubLayer wraps a nested LayerList behind a render predicate. The predicate
// only gates rendering; lookups, inserts and removals always see the nested
// entries.
type SubLayer struct {
	list         *LayerList
	shouldRender func() bool
}

// List returns the nested list.
func (s *SubLayer) List() *LayerList {
	return s.list
}

// ShouldRender evaluates the predicate. A nil predicate always renders.
func (s *SubLayer) ShouldRender() bool {
	return s.shouldRender == nil || s.shouldRender()
}

// Render renders the nested list when ShouldRender reports true.
func (s *SubLayer) Render(screen *ebiten.Image, tick Tick) {
	if s.ShouldRender() {
		s.list.Render(screen, tick)
	}
}

func (*SubLayer) layer() {}

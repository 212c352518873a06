package hud

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// LayerList is an ordered list of layers. Entries render in index order, so
// later entries paint on top of earlier ones.
//
// Identifiers are unique across the whole tree: every insert checks the root
// list and all nested lists, whatever their render predicate says.
// A LayerList is not safe for concurrent use, and must not be mutated from
// inside Render.
type LayerList struct {
	layers []Layer
	parent *LayerList
	logger *log.Logger // only read on the root
}

// NewLayerList creates an empty root list.
func NewLayerList() *LayerList {
	return &LayerList{}
}

// SetLogger sets the logger used for debug output about mutations.
// It applies to the whole tree. A nil logger disables output.
func (l *LayerList) SetLogger(logger *log.Logger) {
	l.root().logger = logger
}

// --- Mutation ---

// AddLayer appends layer to the end of this list.
func (l *LayerList) AddLayer(layer *IdentifiedLayer) error {
	if layer == nil {
		return ErrNilLayer
	}
	if err := l.validateUnique(layer.id); err != nil {
		return err
	}
	l.layers = append(l.layers, layer)
	l.debug("layer added", "id", layer.id)
	return nil
}

// AttachLayerBefore inserts layer directly before the first layer named
// anchor, in the list that holds the anchor. The anchor's render predicate
// therefore also applies to the new layer.
func (l *LayerList) AttachLayerBefore(anchor Identifier, layer *IdentifiedLayer) error {
	if layer == nil {
		return ErrNilLayer
	}
	if err := l.validateUnique(layer.id); err != nil {
		return err
	}
	found := l.findLayer(anchor, func(list *LayerList, index int) visitResult {
		list.insertAt(index, layer)
		return visitHandled
	})
	if !found {
		return &NotFoundError{ID: anchor}
	}
	l.debug("layer attached", "id", layer.id, "before", anchor)
	return nil
}

// AttachLayerAfter inserts layer directly after the first layer named anchor,
// in the list that holds the anchor.
func (l *LayerList) AttachLayerAfter(anchor Identifier, layer *IdentifiedLayer) error {
	if layer == nil {
		return ErrNilLayer
	}
	if err := l.validateUnique(layer.id); err != nil {
		return err
	}
	found := l.findLayer(anchor, func(list *LayerList, index int) visitResult {
		list.insertAt(index+1, layer)
		return visitHandled
	})
	if !found {
		return &NotFoundError{ID: anchor}
	}
	l.debug("layer attached", "id", layer.id, "after", anchor)
	return nil
}

// AttachBeforeFunc is shorthand for AttachLayerBefore(anchor, NewLayer(id, draw)).
func (l *LayerList) AttachBeforeFunc(anchor, id Identifier, draw DrawFunc) error {
	return l.AttachLayerBefore(anchor, NewLayer(id, draw))
}

// AttachAfterFunc is shorthand for AttachLayerAfter(anchor, NewLayer(id, draw)).
func (l *LayerList) AttachAfterFunc(anchor, id Identifier, draw DrawFunc) error {
	return l.AttachLayerAfter(anchor, NewLayer(id, draw))
}

// RemoveLayer removes the first layer named id from whichever list holds it.
func (l *LayerList) RemoveLayer(id Identifier) error {
	found := l.findLayer(id, func(list *LayerList, index int) visitResult {
		list.removeAt(index)
		return visitHandled
	})
	if !found {
		return &NotFoundError{ID: id}
	}
	l.debug("layer removed", "id", id)
	return nil
}

// ReplaceLayer swaps the first layer named id for replacer(old), keeping its
// position and containing list.
//
// The replacement is not checked for uniqueness. This allows a rename through
// a temporary identifier, but it also means a careless replacer can put a
// duplicate identifier into the tree.
func (l *LayerList) ReplaceLayer(id Identifier, replacer func(*IdentifiedLayer) *IdentifiedLayer) error {
	var replacement *IdentifiedLayer
	found := l.findLayer(id, func(list *LayerList, index int) visitResult {
		replacement = replacer(list.layers[index].(*IdentifiedLayer))
		if replacement != nil {
			list.layers[index] = replacement
		}
		return visitHandled
	})
	if !found {
		return &NotFoundError{ID: id}
	}
	if replacement == nil {
		return ErrNilLayer
	}
	l.debug("layer replaced", "id", id, "with", replacement.id)
	return nil
}

// AddSubList appends a SubLayer guarded by shouldRender and returns its
// nested list. A nil shouldRender always renders.
func (l *LayerList) AddSubList(shouldRender func() bool) *LayerList {
	child := &LayerList{parent: l}
	l.layers = append(l.layers, &SubLayer{list: child, shouldRender: shouldRender})
	return child
}

// --- Queries ---

// Len returns the number of direct entries, counting a SubLayer as one.
func (l *LayerList) Len() int {
	return len(l.layers)
}

// Contains reports whether a layer named id exists in this list or any list
// nested below it.
func (l *LayerList) Contains(id Identifier) bool {
	return l.findLayer(id, func(*LayerList, int) visitResult {
		return visitHandled
	})
}

// Walk calls fn for every entry in depth-first pre-order. Entries of a
// sub-list are reported at depth+1 right after their SubLayer. Walking stops
// at the first error, which is returned. fn must not mutate the tree.
func (l *LayerList) Walk(fn func(depth int, layer Layer) error) error {
	return l.walk(0, fn)
}

func (l *LayerList) walk(depth int, fn func(int, Layer) error) error {
	for _, entry := range l.layers {
		if err := fn(depth, entry); err != nil {
			return err
		}
		if sub, ok := entry.(*SubLayer); ok {
			if err := sub.list.walk(depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// --- Rendering ---

// Render draws every entry in order. Sub-lists whose predicate is false are
// skipped entirely.
func (l *LayerList) Render(screen *ebiten.Image, tick Tick) {
	l.render(screen, tick, nil)
}

// render is Render with optional counters for debug mode.
func (l *LayerList) render(screen *ebiten.Image, tick Tick, stats *debugStats) {
	for _, entry := range l.layers {
		switch e := entry.(type) {
		case *IdentifiedLayer:
			e.Render(screen, tick)
			if stats != nil {
				stats.layersDrawn++
			}
		case *SubLayer:
			if !e.ShouldRender() {
				if stats != nil {
					stats.subListsSkipped++
				}
				continue
			}
			e.list.render(screen, tick, stats)
		}
	}
}

// --- Helpers ---

func (l *LayerList) root() *LayerList {
	r := l
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// insertAt inserts layer at index, shifting later entries up.
func (l *LayerList) insertAt(index int, layer Layer) {
	l.layers = append(l.layers, nil)
	copy(l.layers[index+1:], l.layers[index:])
	l.layers[index] = layer
}

// removeAt removes the entry at index. Uses copy+nil to avoid retaining a
// dangling pointer in the backing array.
func (l *LayerList) removeAt(index int) {
	copy(l.layers[index:], l.layers[index+1:])
	l.layers[len(l.layers)-1] = nil
	l.layers = l.layers[:len(l.layers)-1]
}

func (l *LayerList) debug(msg string, keyvals ...any) {
	if logger := l.root().logger; logger != nil {
		logger.Debug(msg, keyvals...)
	}
}

package hud

// visitResult tells the traversal whether a visitor consumed the call.
type visitResult uint8

const (
	visitContinue visitResult = iota // keep walking
	visitHandled                     // stop the whole traversal
)

// layerVisitor is called for each entry in depth-first pre-order. list and
// index locate the entry. A visitor that mutates list must return
// visitHandled, since the traversal stops right there.
type layerVisitor func(list *LayerList, index int) visitResult

// visit walks l and every nested list, entering sub-lists regardless of their
// render predicate. A sub-list is walked right after its SubLayer entry and
// before the entry's next sibling. Reports whether a visitor returned
// visitHandled.
func (l *LayerList) visit(fn layerVisitor) bool {
	for i := 0; i < len(l.layers); i++ {
		if fn(l, i) == visitHandled {
			return true
		}
		if sub, ok := l.layers[i].(*SubLayer); ok {
			if sub.list.visit(fn) {
				return true
			}
		}
	}
	return false
}

// findLayer calls fn on the first identified layer matching id.
// Reports whether fn handled it.
func (l *LayerList) findLayer(id Identifier, fn layerVisitor) bool {
	return l.visit(func(list *LayerList, index int) visitResult {
		if matchesIdentifier(list.layers[index], id) {
			return fn(list, index)
		}
		return visitContinue
	})
}

// validateUnique checks id against the whole tree, starting at the root.
func (l *LayerList) validateUnique(id Identifier) error {
	if l.root().Contains(id) {
		return &DuplicateIdentifierError{ID: id}
	}
	return nil
}

func matchesIdentifier(layer Layer, id Identifier) bool {
	il, ok := layer.(*IdentifiedLayer)
	return ok && il.id == id
}

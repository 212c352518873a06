package hud

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateIdentifier matches every *DuplicateIdentifierError.
	ErrDuplicateIdentifier = errors.New("hud: duplicate layer identifier")
	// ErrLayerNotFound matches every *NotFoundError.
	ErrLayerNotFound = errors.New("hud: layer not found")
	// ErrNilLayer is returned when a nil layer is added or produced by a replacer.
	ErrNilLayer = errors.New("hud: nil layer")
	// ErrAlreadyRegistered is returned by Registry.Register for a taken identifier.
	ErrAlreadyRegistered = errors.New("hud: identifier already registered")
)

// DuplicateIdentifierError is returned when a layer is inserted with an
// identifier that already exists somewhere in the layer tree.
type DuplicateIdentifierError struct {
	ID Identifier
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("hud: layer with identifier %s already exists", e.ID)
}

// Is lets errors.Is(err, ErrDuplicateIdentifier) match.
func (e *DuplicateIdentifierError) Is(target error) bool {
	return target == ErrDuplicateIdentifier
}

// NotFoundError is returned when an anchor or target identifier is absent
// from the layer tree.
type NotFoundError struct {
	ID Identifier
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hud: layer with identifier %s not found", e.ID)
}

// Is lets errors.Is(err, ErrLayerNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrLayerNotFound
}

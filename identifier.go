package hud

import (
	"fmt"
	"strings"
)

// DefaultNamespace is used by ParseIdentifier when the input has no namespace.
const DefaultNamespace = "minecraft"

// Identifier names a layer. Two identifiers are equal when both namespace and
// path are equal, so Identifier can be compared with == and used as a map key.
type Identifier struct {
	Namespace string
	Path      string
}

// InvalidIdentifierError reports a namespace or path with illegal characters.
type InvalidIdentifierError struct {
	Input  string
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("hud: invalid identifier %q: %s", e.Input, e.Reason)
}

// NewIdentifier validates and returns an identifier.
// Namespaces allow [a-z0-9_.-]; paths additionally allow '/'.
func NewIdentifier(namespace, path string) (Identifier, error) {
	input := namespace + ":" + path
	if namespace == "" {
		return Identifier{}, &InvalidIdentifierError{Input: input, Reason: "empty namespace"}
	}
	if path == "" {
		return Identifier{}, &InvalidIdentifierError{Input: input, Reason: "empty path"}
	}
	for _, r := range namespace {
		if !validNamespaceRune(r) {
			return Identifier{}, &InvalidIdentifierError{Input: input, Reason: fmt.Sprintf("illegal character %q in namespace", r)}
		}
	}
	for _, r := range path {
		if !validPathRune(r) {
			return Identifier{}, &InvalidIdentifierError{Input: input, Reason: fmt.Sprintf("illegal character %q in path", r)}
		}
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}

// ParseIdentifier parses "namespace:path". Input without a colon gets
// DefaultNamespace.
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, ":")
	if !ok {
		return NewIdentifier(DefaultNamespace, s)
	}
	return NewIdentifier(ns, path)
}

// MustParseIdentifier is like ParseIdentifier but panics on error.
// Intended for package-level constants.
func MustParseIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Vanilla returns an identifier in DefaultNamespace. Panics on an invalid path.
func Vanilla(path string) Identifier {
	id, err := NewIdentifier(DefaultNamespace, path)
	if err != nil {
		panic(err)
	}
	return id
}

// IsZero reports whether id is the zero Identifier.
func (id Identifier) IsZero() bool {
	return id.Namespace == "" && id.Path == ""
}

func (id Identifier) String() string {
	return id.Namespace + ":" + id.Path
}

// MarshalText implements encoding.TextMarshaler.
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so identifiers decode
// directly from layout files.
func (id *Identifier) UnmarshalText(text []byte) error {
	parsed, err := ParseIdentifier(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func validNamespaceRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') ||
		r == '_' || r == '-' || r == '.'
}

func validPathRune(r rune) bool {
	return validNamespaceRune(r) || r == '/'
}

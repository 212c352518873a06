package hud

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LayerFactory builds a render action from the options table of a layout
// entry.
type LayerFactory func(opts LayerOptions) (DrawFunc, error)

// LayerOptions is the undecoded [layer.options] table of a layout entry.
type LayerOptions struct {
	md   toml.MetaData
	prim *toml.Primitive
}

// Decode decodes the options table into v. Fields of v keep their values when
// the entry has no options table.
func (o LayerOptions) Decode(v any) error {
	if o.prim == nil {
		return nil
	}
	return o.md.PrimitiveDecode(*o.prim, v)
}

// LayerType names the factory of a layout entry. In TOML it is either a
// plain identifier string or a table {id = "...", optional = true}.
// An optional type that is not registered makes Apply skip the entry instead
// of failing.
type LayerType struct {
	ID       Identifier
	Optional bool
}

// UnmarshalTOML implements toml.Unmarshaler.
func (t *LayerType) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		id, err := ParseIdentifier(v)
		if err != nil {
			return err
		}
		*t = LayerType{ID: id}
		return nil
	case map[string]any:
		raw, ok := v["id"].(string)
		if !ok {
			return errors.New("type table needs a string id")
		}
		id, err := ParseIdentifier(raw)
		if err != nil {
			return err
		}
		optional := false
		if o, ok := v["optional"]; ok {
			if optional, ok = o.(bool); !ok {
				return fmt.Errorf("type optional must be a boolean, was %T", o)
			}
		}
		*t = LayerType{ID: id, Optional: optional}
		return nil
	default:
		return fmt.Errorf("expected type to be a string or table, was %T", data)
	}
}

// LayoutEntry is one [[layer]] table.
type LayoutEntry struct {
	// ID names the new layer, or the layer to replace or remove.
	ID      Identifier      `toml:"id"`
	Type    *LayerType      `toml:"type"`
	Before  Identifier      `toml:"before"`
	After   Identifier      `toml:"after"`
	Replace bool            `toml:"replace"`
	Remove  bool            `toml:"remove"`
	Options *toml.Primitive `toml:"options"`
}

// Layout is a parsed layout file: an ordered list of layer operations that
// is applied to a LayerList, usually from a registration handler.
//
//	[[layer]]
//	id = "demo:fps"
//	type = "hud:fps"
//	after = "minecraft:debug"
//	[layer.options]
//	x = 4
type Layout struct {
	Layers []LayoutEntry `toml:"layer"`

	md toml.MetaData
}

// LoadLayout parses a layout from TOML data.
func LoadLayout(data []byte) (*Layout, error) {
	var lay Layout
	md, err := toml.Decode(string(data), &lay)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	lay.md = md
	if err := lay.validate(); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return &lay, nil
}

// LoadLayoutFile parses a layout from a TOML file.
func LoadLayoutFile(path string) (*Layout, error) {
	var lay Layout
	md, err := toml.DecodeFile(path, &lay)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	lay.md = md
	if err := lay.validate(); err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return &lay, nil
}

// validate rejects unknown keys and inconsistent entries.
func (lay *Layout) validate() error {
	for _, key := range lay.md.Undecoded() {
		// Options are decoded later by the factory.
		if len(key) >= 2 && key[0] == "layer" && key[1] == "options" {
			continue
		}
		return fmt.Errorf("unknown key %q", key.String())
	}
	for i, e := range lay.Layers {
		if err := e.validate(); err != nil {
			return fmt.Errorf("layer %d: %w", i, err)
		}
	}
	return nil
}

func (e LayoutEntry) validate() error {
	if e.ID.IsZero() {
		return errors.New("missing id")
	}
	var ops []string
	if !e.Before.IsZero() {
		ops = append(ops, "before")
	}
	if !e.After.IsZero() {
		ops = append(ops, "after")
	}
	if e.Replace {
		ops = append(ops, "replace")
	}
	if e.Remove {
		ops = append(ops, "remove")
	}
	if len(ops) > 1 {
		return fmt.Errorf("%s: only one of before, after, replace, remove may be set", strings.Join(ops, ", "))
	}
	if e.Remove {
		if e.Type != nil {
			return errors.New("remove does not take a type")
		}
		return nil
	}
	if e.Type == nil {
		return errors.New("missing type")
	}
	return nil
}

// Apply runs every entry against layers in file order. It stops at the first
// failure; entries applied before it stay applied.
func (lay *Layout) Apply(layers *LayerList, factories *Registry[LayerFactory]) error {
	for i, e := range lay.Layers {
		if err := lay.apply(layers, factories, e); err != nil {
			return fmt.Errorf("layer %d (%s): %w", i, e.ID, err)
		}
	}
	return nil
}

// Registration returns a registration handler that applies the layout.
func (lay *Layout) Registration(factories *Registry[LayerFactory]) LayerRegistrationFunc {
	return func(layers *LayerList) error {
		return lay.Apply(layers, factories)
	}
}

func (lay *Layout) apply(layers *LayerList, factories *Registry[LayerFactory], e LayoutEntry) error {
	if e.Remove {
		return layers.RemoveLayer(e.ID)
	}

	factory, ok := factories.Get(e.Type.ID)
	if !ok {
		if e.Type.Optional {
			layers.debug("layout entry skipped", "id", e.ID, "type", e.Type.ID)
			return nil
		}
		return fmt.Errorf("unknown layer type %s", e.Type.ID)
	}
	draw, err := factory(LayerOptions{md: lay.md, prim: e.Options})
	if err != nil {
		return fmt.Errorf("build %s: %w", e.Type.ID, err)
	}
	layer := NewLayer(e.ID, draw)

	switch {
	case !e.Before.IsZero():
		return layers.AttachLayerBefore(e.Before, layer)
	case !e.After.IsZero():
		return layers.AttachLayerAfter(e.After, layer)
	case e.Replace:
		return layers.ReplaceLayer(e.ID, func(*IdentifiedLayer) *IdentifiedLayer {
			return layer
		})
	default:
		return layers.AddLayer(layer)
	}
}

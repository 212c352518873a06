// Package hud is an ordered, identifier-keyed HUD layer stack for [Ebitengine].
//
// A HUD is a list of layers drawn bottom to top every frame. Each layer has an
// [Identifier] such as "minecraft:chat", so independent code can position its
// own layers relative to existing ones without knowing the full stack.
//
// # Quick start
//
// Register a handler before the HUD is created, then draw the HUD from your
// game's Draw method:
//
//	hud.LayerRegistrationEvent.Register(func(layers *hud.LayerList) error {
//		return layers.AttachAfterFunc(hud.ExperienceLevelLayer,
//			hud.MustParseIdentifier("mymod:mana"), drawMana)
//	})
//
//	h, err := hud.NewHud(hud.HudConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := hud.Run(h, hud.RunConfig{Title: "My Game", Width: 640, Height: 480}); err != nil {
//		log.Fatal(err)
//	}
//
// # Layer tree
//
// A [LayerList] holds two kinds of entries: [IdentifiedLayer] leaves and
// [SubLayer] nodes wrapping a nested list behind a render predicate. The
// vanilla tree built by [NewHud] is
//
//	[ sub(hud visible): misc_overlays .. boss_bar,
//	  sleep,
//	  sub(hud visible): demo_timer .. subtitles ]
//
// Lookups ([LayerList.AttachLayerBefore], [LayerList.AttachLayerAfter],
// [LayerList.RemoveLayer], [LayerList.ReplaceLayer]) walk the tree depth-first
// and act on the first match, in whichever list holds it. A layer attached
// next to an anchor therefore shares the anchor's render predicate.
// Identifiers must be unique across the whole tree.
//
// # Layout files
//
// Layers can also be declared in TOML and built by registered factories, see
// [Layout] and [DefaultFactories].
//
// [Ebitengine]: https://ebitengine.org
package hud

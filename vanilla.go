package hud

// Vanilla HUD layer identifiers, in the order they are drawn. The first is
// drawn first and ends up at the bottom.
//
// Every vanilla layer except SleepLayer lives in a sub-list that only renders
// while the HUD is not hidden. Layers attached relative to one of them
// inherit that condition; layers added with AddLayer do not.
//
// Common anchors:
//   - before MiscOverlaysLayer: render before everything
//   - after MiscOverlaysLayer: above vignette-style overlays, below the crosshair
//   - after ExperienceLevelLayer: above the hotbar, bars, status effects and boss bar
//   - before DemoTimerLayer: above the sleep overlay, below the text overlays
//   - before ChatLayer: below chat, player list and subtitles
//   - after SubtitlesLayer: render after everything
var (
	MiscOverlaysLayer     = Vanilla("misc_overlays")
	CrosshairLayer        = Vanilla("crosshair")
	HotbarAndBarsLayer    = Vanilla("hotbar_and_bars")
	ExperienceLevelLayer  = Vanilla("experience_level")
	StatusEffectsLayer    = Vanilla("status_effects")
	BossBarLayer          = Vanilla("boss_bar")
	SleepLayer            = Vanilla("sleep")
	DemoTimerLayer        = Vanilla("demo_timer")
	DebugLayer            = Vanilla("debug")
	ScoreboardLayer       = Vanilla("scoreboard")
	OverlayMessageLayer   = Vanilla("overlay_message")
	TitleAndSubtitleLayer = Vanilla("title_and_subtitle")
	ChatLayer             = Vanilla("chat")
	PlayerListLayer       = Vanilla("player_list")
	SubtitlesLayer        = Vanilla("subtitles") // sound subtitles, not titles
)

// mainLayers render below the sleep overlay.
var mainLayers = []Identifier{
	MiscOverlaysLayer,
	CrosshairLayer,
	HotbarAndBarsLayer,
	ExperienceLevelLayer,
	StatusEffectsLayer,
	BossBarLayer,
}

// overlayLayers render above the sleep overlay.
var overlayLayers = []Identifier{
	DemoTimerLayer,
	DebugLayer,
	ScoreboardLayer,
	OverlayMessageLayer,
	TitleAndSubtitleLayer,
	ChatLayer,
	PlayerListLayer,
	SubtitlesLayer,
}

// VanillaLayers returns every vanilla identifier in draw order.
func VanillaLayers() []Identifier {
	ids := make([]Identifier, 0, len(mainLayers)+1+len(overlayLayers))
	ids = append(ids, mainLayers...)
	ids = append(ids, SleepLayer)
	ids = append(ids, overlayLayers...)
	return ids
}

// buildVanilla fills root with [Sub(main, visible), sleep, Sub(overlays, visible)].
// draws supplies the render action per identifier; missing entries draw nothing.
func buildVanilla(root *LayerList, draws map[Identifier]DrawFunc, visible func() bool) error {
	main := root.AddSubList(visible)
	for _, id := range mainLayers {
		if err := main.AddLayer(NewLayer(id, draws[id])); err != nil {
			return err
		}
	}
	if err := root.AddLayer(NewLayer(SleepLayer, draws[SleepLayer])); err != nil {
		return err
	}
	overlays := root.AddSubList(visible)
	for _, id := range overlayLayers {
		if err := overlays.AddLayer(NewLayer(id, draws[id])); err != nil {
			return err
		}
	}
	return nil
}

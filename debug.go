package hud

import "time"

// debugStats holds per-frame timing and layer counts.
// Only populated when Hud.debug is true.
type debugStats struct {
	renderTime      time.Duration
	callbackTime    time.Duration
	layersDrawn     int
	subListsSkipped int
}

// debugLog logs timing and layer counts at debug level.
func (h *Hud) debugLog(tick Tick, stats debugStats) {
	if !h.debug {
		return
	}
	h.logger.Debug("frame",
		"frame", tick.Frame,
		"render", stats.renderTime,
		"callbacks", stats.callbackTime,
		"total", stats.renderTime+stats.callbackTime,
		"drawn", stats.layersDrawn,
		"skipped", stats.subListsSkipped,
	)
}

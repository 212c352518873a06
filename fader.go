package hud

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader animates an alpha value in [0, 1]. Use Alpha when drawing a layer and
// Visible as a SubLayer predicate so a fully faded sub-list is skipped.
//
// There is no global animation manager. Call Update each tick, or hand the
// fader to Hud.Track.
type Fader struct {
	tween *gween.Tween
	alpha float64
	done  bool
}

// NewFader returns a fader resting at alpha (clamped to [0, 1]).
func NewFader(alpha float64) *Fader {
	return &Fader{alpha: clamp01(alpha), done: true}
}

// FadeTo starts a tween from the current alpha to target over seconds,
// replacing any tween in progress. A non-positive duration jumps straight to
// target.
func (f *Fader) FadeTo(target float64, seconds float32, fn ease.TweenFunc) {
	target = clamp01(target)
	if seconds <= 0 {
		f.tween = nil
		f.alpha = target
		f.done = true
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	f.tween = gween.New(float32(f.alpha), float32(target), seconds, fn)
	f.done = false
}

// Update advances the tween by dt seconds.
func (f *Fader) Update(dt float32) {
	if f.done || f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.alpha = clamp01(float64(val))
	if finished {
		f.done = true
		f.tween = nil
	}
}

// Alpha returns the current alpha.
func (f *Fader) Alpha() float64 {
	return f.alpha
}

// Visible reports whether the alpha is above zero.
func (f *Fader) Visible() bool {
	return f.alpha > 0
}

// Done reports whether no tween is in progress.
func (f *Fader) Done() bool {
	return f.done
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

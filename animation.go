package scrollreel

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader animates a single float64 towards a target with an easing function.
// Callers advance it with Update(dt) each tick; there is no global manager.
type Fader struct {
	tween *gween.Tween
	Value float64
	Done  bool
}

// NewFader creates a fader resting at value.
func NewFader(value float64) *Fader {
	return &Fader{Value: value, Done: true}
}

// To starts a transition from the current value to target over duration
// seconds. A non-positive duration jumps immediately.
func (f *Fader) To(target float64, duration float32, fn ease.TweenFunc) {
	if duration <= 0 {
		f.Set(target)
		return
	}
	f.tween = gween.New(float32(f.Value), float32(target), duration, fn)
	f.Done = false
}

// Set jumps to value and cancels any running transition.
func (f *Fader) Set(value float64) {
	f.tween = nil
	f.Value = value
	f.Done = true
}

// Update advances the transition by dt seconds.
func (f *Fader) Update(dt float32) {
	if f.Done || f.tween == nil {
		return
	}
	val, finished := f.tween.Update(dt)
	f.Value = float64(val)
	if finished {
		f.Done = true
		f.tween = nil
	}
}

package scrollreel

import "time"

// InjectEvent queues a synthetic event. Queued events are consumed one per
// Tick, after real input, so scripted sessions advance at the frame rate.
func (a *App) InjectEvent(ev Event) {
	a.injectQueue = append(a.injectQueue, ev)
}

// InjectScroll queues a scroll to top (CSS px), linearly interpolated from
// the current position over frames ticks. Minimum frames is 1.
func (a *App) InjectScroll(top float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	from := a.scroll.Top
	for _, ev := range a.injectQueue {
		if ev.Type == EventScrollTo {
			from = ev.Value
		}
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		a.InjectEvent(Event{Type: EventScrollTo, Value: from + (top-from)*t})
	}
}

// InjectScrollFraction is InjectScroll with the target given as a fraction
// of the scrollable height.
func (a *App) InjectScrollFraction(fraction float64, frames int) {
	a.InjectScroll(clamp01(fraction)*a.view.Scrollable(a.cfg.ScrollPages), frames)
}

// InjectPending reports how many synthetic events are still queued.
func (a *App) InjectPending() int { return len(a.injectQueue) }

// processInjected pops one event from the inject queue and dispatches it.
// It reports whether an event was consumed.
func (a *App) processInjected(now time.Time) bool {
	if len(a.injectQueue) == 0 {
		return false
	}
	ev := a.injectQueue[0]
	copy(a.injectQueue, a.injectQueue[1:])
	a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
	a.Dispatch(ev, now)
	return true
}

package scrollreel

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// keyRepeatDelay and keyRepeatEvery are in ticks, as reported by
	// inpututil.KeyPressDuration.
	keyRepeatDelay = 30
	keyRepeatEvery = 3

	motionPollInterval = time.Second
	pageFraction       = 0.9
)

// InputPoller turns Ebitengine input state into Events once per tick.
type InputPoller struct {
	ScrollStep float64
	Platform   Platform

	focusKnown   bool
	focused      bool
	motion       bool
	motionPolled time.Time
	touches      []ebiten.TouchID
	touchY       map[ebiten.TouchID]float64
}

// NewInputPoller creates a poller. platform may be nil.
func NewInputPoller(scrollStep float64, platform Platform) *InputPoller {
	p := &InputPoller{
		ScrollStep: scrollStep,
		Platform:   platform,
		touchY:     make(map[ebiten.TouchID]float64),
	}
	if platform != nil {
		p.motion = platform.PrefersReducedMotion()
	}
	return p
}

// Poll appends the events observed this tick to dst. viewportH is the CSS
// height used for page-sized scrolls.
func (p *InputPoller) Poll(dst []Event, now time.Time, viewportH float64) []Event {
	if focused := ebiten.IsFocused(); !p.focusKnown || focused != p.focused {
		if p.focusKnown {
			dst = append(dst, Event{Type: EventVisibility, Hidden: !focused})
		}
		p.focusKnown = true
		p.focused = focused
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		dst = append(dst, Event{Type: EventScrollBy, Delta: -dy * p.ScrollStep})
	}

	if keyRepeating(ebiten.KeyArrowDown) {
		dst = append(dst, Event{Type: EventScrollBy, Delta: p.ScrollStep})
	}
	if keyRepeating(ebiten.KeyArrowUp) {
		dst = append(dst, Event{Type: EventScrollBy, Delta: -p.ScrollStep})
	}
	if keyRepeating(ebiten.KeyPageDown) || keyRepeating(ebiten.KeySpace) {
		dst = append(dst, Event{Type: EventScrollBy, Delta: viewportH * pageFraction})
	}
	if keyRepeating(ebiten.KeyPageUp) {
		dst = append(dst, Event{Type: EventScrollBy, Delta: -viewportH * pageFraction})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		dst = append(dst, Event{Type: EventScrollToFraction, Value: 0})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		dst = append(dst, Event{Type: EventScrollToFraction, Value: 1})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		dst = append(dst, Event{Type: EventToggleReducedMotion})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		dst = append(dst, Event{Type: EventToggleStats})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		dst = append(dst, Event{Type: EventRetry})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst = append(dst, Event{Type: EventDismissModal})
	}

	dst = p.pollTouches(dst)

	if p.Platform != nil && now.Sub(p.motionPolled) >= motionPollInterval {
		p.motionPolled = now
		if m := p.Platform.PrefersReducedMotion(); m != p.motion {
			p.motion = m
			dst = append(dst, Event{Type: EventReducedMotion, Enabled: m})
		}
	}
	return dst
}

// pollTouches converts vertical movement of the first active touch into a
// scroll, moving the document opposite to the finger like a browser does.
func (p *InputPoller) pollTouches(dst []Event) []Event {
	p.touches = ebiten.AppendTouchIDs(p.touches[:0])
	for id := range p.touchY {
		if inpututil.IsTouchJustReleased(id) {
			delete(p.touchY, id)
		}
	}
	if len(p.touches) == 0 {
		clear(p.touchY)
		return dst
	}
	id := p.touches[0]
	_, y := ebiten.TouchPosition(id)
	cy := float64(y) / BackingScale
	if prev, ok := p.touchY[id]; ok && cy != prev {
		dst = append(dst, Event{Type: EventScrollBy, Delta: prev - cy})
	}
	p.touchY[id] = cy
	return dst
}

func keyRepeating(k ebiten.Key) bool {
	if inpututil.IsKeyJustPressed(k) {
		return true
	}
	d := inpututil.KeyPressDuration(k)
	return d > keyRepeatDelay && d%keyRepeatEvery == 0
}

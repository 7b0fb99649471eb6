package scrollreel

import (
	"encoding/json"
	"fmt"
	"time"
)

// scriptStep is a single action in a test script.
type scriptStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Top      float64 `json:"top,omitempty"`
	Fraction float64 `json:"fraction,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Millis   int     `json:"ms,omitempty"`
}

type testScript struct {
	Steps []scriptStep `json:"steps"`
}

// TestRunner sequences scripted scrolling, toggles, and screenshots across
// ticks for automated visual checks. Attach it with App.SetTestRunner.
//
// Recognised actions: scroll, scroll-fraction, wait, wait-loaded,
// screenshot, retry, toggle-motion, toggle-stats, resize.
type TestRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	waitUntil time.Time
	waitLoad  bool
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "scroll", "scroll-fraction", "wait", "wait-loaded", "screenshot",
			"retry", "toggle-motion", "toggle-stats", "resize":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a runner. It is stepped from Tick after injected
// events have been applied.
func (a *App) SetTestRunner(r *TestRunner) {
	a.runner = r
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

func (r *TestRunner) step(a *App, now time.Time) {
	if r.done {
		return
	}
	if len(a.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if !r.waitUntil.IsZero() {
		if now.Before(r.waitUntil) {
			return
		}
		r.waitUntil = time.Time{}
	}
	if r.waitLoad {
		if !a.load.AnimationStarted || a.load.Loading {
			return
		}
		r.waitLoad = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		a.Screenshot(st.Label)
	case "scroll":
		a.InjectScroll(st.Top, max(st.Frames, 1))
	case "scroll-fraction":
		a.InjectScrollFraction(st.Fraction, max(st.Frames, 1))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
		if st.Millis > 0 {
			r.waitUntil = now.Add(time.Duration(st.Millis) * time.Millisecond)
		}
	case "wait-loaded":
		r.waitLoad = true
	case "retry":
		a.InjectEvent(Event{Type: EventRetry})
	case "toggle-motion":
		a.InjectEvent(Event{Type: EventToggleReducedMotion})
	case "toggle-stats":
		a.InjectEvent(Event{Type: EventToggleStats})
	case "resize":
		a.InjectEvent(Event{Type: EventResize, Width: st.Width, Height: st.Height})
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.waitUntil.IsZero() && !r.waitLoad && len(a.injectQueue) == 0 {
		r.done = true
	}
}

// ScriptDone reports whether an attached test runner has finished.
func (a *App) ScriptDone() bool {
	return a.runner != nil && a.runner.Done()
}

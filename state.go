package scrollreel

import "github.com/google/uuid"

// Phase is the App's top-level state.
type Phase uint8

const (
	PhaseInitializing Phase = iota // waiting for the start delay
	PhaseLoading                   // a loader pass is running, animation not started
	PhaseRetrying                  // state cleared, next Tick starts a new pass
	PhaseRendering                 // animation started; loading may still run
)

func (p Phase) String() string {
	switch p {
	case PhaseInitializing:
		return "initializing"
	case PhaseLoading:
		return "loading"
	case PhaseRetrying:
		return "retrying"
	case PhaseRendering:
		return "rendering"
	}
	return "unknown"
}

// LoadState aggregates the progress of the current loading pass.
type LoadState struct {
	Pass             uuid.UUID
	Attempted        int
	Failed           int
	Loading          bool
	AnimationStarted bool
	// Fallback is set when the animation was started by the timeout.
	Fallback bool
}

// Succeeded returns Attempted - Failed.
func (s LoadState) Succeeded() int { return s.Attempted - s.Failed }

// ScrollState is the mapped scroll position.
type ScrollState struct {
	Top           float64 // CSS px from the top of the virtual document
	Progress      float64
	CurrentFrame  int
	ReducedMotion bool
	Mobile        bool
	FrameSkip     int
}

// Viewport is the CSS size of the window.
type Viewport struct {
	Width, Height float64
}

// Scrollable returns the scrollable height of a document pages viewports
// tall.
func (v Viewport) Scrollable(pages float64) float64 {
	return max(v.Height*pages-v.Height, 0)
}

package scrollreel

// EventType identifies an input event consumed by App.Dispatch.
type EventType uint8

const (
	EventScrollBy            EventType = iota // relative scroll by Delta CSS px
	EventScrollTo                             // absolute scroll to Value CSS px
	EventScrollToFraction                     // absolute scroll to Value in [0, 1] of the scrollable height
	EventResize                               // viewport resized to Width x Height CSS px
	EventVisibility                           // page hidden (Hidden) or shown
	EventReducedMotion                        // system reduced-motion preference changed to Enabled
	EventToggleReducedMotion                  // user toggled reduced motion
	EventToggleStats                          // user toggled the performance panel
	EventRetry                                // user asked to reload all frames
	EventDismissModal                         // user closed the error modal
)

// Event is one input signal. Only the fields relevant to Type are read.
type Event struct {
	Type    EventType
	Delta   float64
	Value   float64
	Width   float64
	Height  float64
	Hidden  bool
	Enabled bool
}

func (t EventType) String() string {
	switch t {
	case EventScrollBy:
		return "scroll-by"
	case EventScrollTo:
		return "scroll-to"
	case EventScrollToFraction:
		return "scroll-to-fraction"
	case EventResize:
		return "resize"
	case EventVisibility:
		return "visibility"
	case EventReducedMotion:
		return "reduced-motion"
	case EventToggleReducedMotion:
		return "toggle-reduced-motion"
	case EventToggleStats:
		return "toggle-stats"
	case EventRetry:
		return "retry"
	case EventDismissModal:
		return "dismiss-modal"
	}
	return "unknown"
}

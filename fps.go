package scrollreel

import (
	"fmt"
	"math"
)

// WithFPS sets the frame-rate source shown in the stats panel. Game installs
// ebiten.ActualFPS when none is set.
func WithFPS(fps func() float64) Option {
	return func(a *App) { a.fps = fps }
}

// FPS returns the frame rate reported by the App's FPS source, or 0 when it
// has none.
func (a *App) FPS() float64 {
	if a.fps == nil {
		return 0
	}
	return a.fps()
}

// statsText formats the performance panel.
func statsText(frame int, fps, progress float64) string {
	return fmt.Sprintf("Frame: %d\nFPS: %.1f\nScroll: %d%%", frame, fps, int(math.Round(progress*100)))
}

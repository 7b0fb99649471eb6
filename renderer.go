package scrollreel

import "time"

// reducedMotionAlpha is the canvas opacity while reduced motion is on.
const reducedMotionAlpha = 0.3

// Renderer paints exactly one frame per call: the cached image when
// present, the placeholder otherwise. The surface is never left blank.
type Renderer struct {
	TotalFrames int
	Title       string

	// Dimmed draws the frame at reduced opacity over black.
	Dimmed bool
}

// Draw paints frame onto s. now only feeds the placeholder animation.
// It reports whether the cached image was used.
func (r *Renderer) Draw(s Surface, cache *FrameCache, frame int, now time.Time) bool {
	w, h := s.Size()
	img, ok := cache.Get(frame)
	if !ok {
		DrawPlaceholder(s, frame, r.TotalFrames, r.Title, now)
		if r.Dimmed {
			s.FillRect(Rect{Width: w, Height: h}, ColorBlack.WithAlpha(1-reducedMotionAlpha))
		}
		return false
	}

	s.FillRect(Rect{Width: w, Height: h}, ColorBlack)
	b := img.Bounds()
	dst := CoverFit(w, h, float64(b.Dx()), float64(b.Dy()))
	alpha := 1.0
	if r.Dimmed {
		alpha = reducedMotionAlpha
	}
	s.DrawImage(img, dst, alpha)
	return true
}

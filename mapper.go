package scrollreel

import "math"

// ScrollProgress normalises a scroll offset to [0, 1]. A document that
// cannot scroll reports 0.
func ScrollProgress(scrollTop, scrollable float64) float64 {
	if scrollable <= 0 || math.IsNaN(scrollTop) {
		return 0
	}
	return clamp01(scrollTop / scrollable)
}

// FrameForProgress maps progress to a frame index in [1, total]. With
// frameSkip > 1 the index is rounded up to the next multiple of frameSkip
// and clamped to total, so progress 1 always lands on the last frame.
func FrameForProgress(progress float64, total, frameSkip int) int {
	if total < 1 {
		return 1
	}
	frame := clampInt(int(math.Ceil(clamp01(progress)*float64(total))), 1, total)
	if frameSkip > 1 {
		frame = min((frame+frameSkip-1)/frameSkip*frameSkip, total)
	}
	return frame
}

// MapScroll converts a scroll offset into (frame, progress). frameSkip is
// the effective skip for the device; see Capabilities.FrameSkip.
func MapScroll(scrollTop, scrollable float64, total, frameSkip int) (int, float64) {
	p := ScrollProgress(scrollTop, scrollable)
	return FrameForProgress(p, total, frameSkip), p
}

// FadeIn interpolates linearly from 0 at start to 1 at end, clamped outside
// the range. A degenerate range acts as a step at start.
func FadeIn(progress, start, end float64) float64 {
	if end == start {
		if progress >= start {
			return 1
		}
		return 0
	}
	return clamp01((progress - start) / (end - start))
}

// FadeOut is 1 - FadeIn.
func FadeOut(progress, start, end float64) float64 {
	return 1 - FadeIn(progress, start, end)
}

// ScrollMapper tracks the current frame and gates redraws on change.
type ScrollMapper struct {
	TotalFrames int
	FrameSkip   int

	frame    int
	progress float64
}

// NewScrollMapper starts at the frame for zero progress: 1, or the frame
// skip when frames are skipped.
func NewScrollMapper(totalFrames, frameSkip int) *ScrollMapper {
	skip := max(frameSkip, 1)
	return &ScrollMapper{TotalFrames: totalFrames, FrameSkip: skip, frame: FrameForProgress(0, totalFrames, skip)}
}

// Update recomputes the frame for a scroll offset. changed is false when the
// frame index equals the previous one, in which case no redraw is needed.
func (m *ScrollMapper) Update(scrollTop, scrollable float64) (frame int, changed bool) {
	frame, m.progress = MapScroll(scrollTop, scrollable, m.TotalFrames, m.FrameSkip)
	if frame == m.frame {
		return frame, false
	}
	m.frame = frame
	return frame, true
}

// Frame returns the current frame index.
func (m *ScrollMapper) Frame() int { return m.frame }

// Progress returns the progress computed by the last Update.
func (m *ScrollMapper) Progress() float64 { return m.progress }

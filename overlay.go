package scrollreel

import "fmt"

var (
	hudAccent   = RGB(0x2d, 0xa6, 0xb2)
	hudPanel    = Color{0.08, 0.08, 0.1, 0.85}
	hudBarTrack = RGB(0x33, 0x33, 0x33)
)

// OverlayOpacity is the opacity of the intro overlay text. It fades out over
// the configured range and is pinned to 1 while reduced motion is on.
func (a *App) OverlayOpacity() float64 {
	if a.scroll.ReducedMotion {
		return 1
	}
	return FadeOut(a.scroll.Progress, a.cfg.OverlayFadeStart, a.cfg.OverlayFadeEnd)
}

// BrandOpacity is the opacity of the brand label, fading in over the
// configured range.
func (a *App) BrandOpacity() float64 {
	return FadeIn(a.scroll.Progress, a.cfg.BrandFadeStart, a.cfg.BrandFadeEnd)
}

// EndMessageVisible reports whether scrolling has passed the end threshold.
func (a *App) EndMessageVisible() bool {
	return a.scroll.Progress > a.cfg.EndMessageAt
}

// MotionLabel is the label of the reduced-motion toggle.
func (a *App) MotionLabel() string {
	if a.scroll.ReducedMotion {
		return "Enable Animation"
	}
	return "Disable Animation"
}

// StatsLabel is the label of the performance panel toggle.
func (a *App) StatsLabel() string {
	if a.showStats {
		return "Hide Stats"
	}
	return "Show Stats"
}

func (a *App) drawHUD(s Surface) {
	w, h := s.Size()

	if a.load.AnimationStarted {
		if op := a.OverlayOpacity(); op > 0 && a.cfg.OverlayText != "" {
			s.DrawText(a.cfg.OverlayText, w/2, h*0.3, 32, TextAlignCenter, ColorWhite.WithAlpha(op))
		}
		if op := a.BrandOpacity(); op > 0 && a.cfg.Brand != "" {
			s.DrawText(a.cfg.Brand, 24, 40, 22, TextAlignLeft, ColorWhite.WithAlpha(op))
		}
		if a.EndMessageVisible() && a.cfg.EndMessage != "" {
			s.DrawText(a.cfg.EndMessage, w/2, h*0.7, 28, TextAlignCenter, ColorWhite)
		}
		if a.load.Failed > 0 {
			s.DrawText(a.Status(), 16, h-16, 14, TextAlignLeft, hudAccent)
		}
	}

	s.DrawText(fmt.Sprintf("[M] %s   [P] %s", a.MotionLabel(), a.StatsLabel()), w-16, h-16, 14, TextAlignRight, ColorWhite.WithAlpha(0.7))

	if a.showStats {
		s.FillRect(Rect{X: w - 150, Y: 12, Width: 138, Height: 52}, hudPanel)
		s.DebugText(statsText(a.scroll.CurrentFrame, a.FPS(), a.scroll.Progress), w-144, 16)
	}

	if alpha := a.loadingAlpha.Value; alpha > 0.001 {
		a.drawLoadingScreen(s, w, h, alpha)
	}

	if a.modal {
		a.drawModal(s, w, h)
	}
}

func (a *App) drawLoadingScreen(s Surface, w, h, alpha float64) {
	s.FillRect(Rect{Width: w, Height: h}, ColorBlack.WithAlpha(alpha))
	cx, cy := w/2, h/2
	s.DrawText("Loading frames", cx, cy-30, 28, TextAlignCenter, ColorWhite.WithAlpha(alpha))

	track := Rect{X: cx - 160, Y: cy, Width: 320, Height: 6}
	s.FillRect(track, hudBarTrack.WithAlpha(alpha))
	fill := track
	fill.Width = clamp01(a.progressBar.Value) * track.Width
	s.FillRect(fill, hudAccent.WithAlpha(alpha))

	s.DrawText(fmt.Sprintf("%d / %d", a.load.Attempted, a.cfg.TotalFrames), cx, cy+36, 16, TextAlignCenter, ColorWhite.WithAlpha(alpha))
	status := hudAccent
	if a.load.Failed == 0 {
		status = ColorWhite
	}
	s.DrawText(a.Status(), cx, cy+60, 14, TextAlignCenter, status.WithAlpha(alpha*0.8))
}

func (a *App) drawModal(s Surface, w, h float64) {
	box := Rect{X: w/2 - 220, Y: h/2 - 70, Width: 440, Height: 140}
	s.FillRect(Rect{Width: w, Height: h}, ColorBlack.WithAlpha(0.5))
	s.FillRect(box, hudPanel)
	s.DrawText("Some frames could not be loaded", w/2, box.Y+36, 20, TextAlignCenter, ColorWhite)
	s.DrawText(a.Status(), w/2, box.Y+70, 14, TextAlignCenter, hudAccent)
	s.DrawText("[R] Retry    [C] Continue", w/2, box.Y+110, 16, TextAlignCenter, ColorWhite)
}

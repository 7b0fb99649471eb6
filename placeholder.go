package scrollreel

import (
	"fmt"
	"math"
	"time"
)

const (
	placeholderBarW    = 400
	placeholderBarH    = 40
	placeholderOrbs    = 5
	placeholderOrbPath = 100 // horizontal swing in CSS px
)

var placeholderBarBG = RGB(0x33, 0x33, 0x33)

// PlaceholderHue is the gradient hue in degrees for a frame index.
func PlaceholderHue(frame int) float64 {
	return float64(((frame*2)%360 + 360) % 360)
}

// DrawPlaceholder paints a synthetic frame. The output depends only on
// frame, total, title, the surface size, and now.
func DrawPlaceholder(s Surface, frame, total int, title string, now time.Time) {
	w, h := s.Size()
	full := Rect{Width: w, Height: h}
	hue := PlaceholderHue(frame)

	s.FillRect(full, ColorBlack)
	s.FillLinearGradient(full, HSL(hue, 0.30, 0.15), ColorBlack)

	cx, cy := w/2, h/2
	if title != "" {
		s.DrawText(title, cx, cy-40, 36, TextAlignCenter, ColorWhite)
	}
	s.DrawText(fmt.Sprintf("Frame %d of %d", frame, total), cx, cy+20, 24, TextAlignCenter, ColorWhite)

	bar := Rect{X: (w - placeholderBarW) / 2, Y: cy + 80, Width: placeholderBarW, Height: placeholderBarH}
	s.FillRect(bar, placeholderBarBG)
	if total > 0 {
		fill := bar
		fill.Width = float64(frame) / float64(total) * placeholderBarW
		s.FillRect(fill, ColorWhite)
	}

	t := float64(now.UnixNano()) / float64(time.Second)
	orb := HSL(hue+180, 0.60, 0.50)
	orbY := cy + 160
	for i := range placeholderOrbs {
		fi := float64(i)
		x := cx + math.Sin(t+fi)*placeholderOrbPath
		y := orbY + math.Cos(t*1.5+fi)*50
		r := 5 + math.Sin(t*2+fi)*3
		s.FillCircle(x, y, r, orb)
	}
}

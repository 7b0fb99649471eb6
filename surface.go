package scrollreel

import "image"

// Surface is the 2D immediate-mode drawing target. Coordinates are CSS
// pixels; implementations apply the backing-store scale themselves.
type Surface interface {
	// Size returns the drawable size in CSS pixels.
	Size() (w, h float64)
	FillRect(r Rect, c Color)
	// FillLinearGradient fills r with a gradient running from its top-left
	// corner (from) to its bottom-right corner (to).
	FillLinearGradient(r Rect, from, to Color)
	FillCircle(cx, cy, radius float64, c Color)
	// DrawText draws s with its baseline at y, aligned around x.
	DrawText(s string, x, y, size float64, align TextAlign, c Color)
	// DrawImage blits img scaled into dst with the given opacity.
	DrawImage(img image.Image, dst Rect, alpha float64)
	// DebugText prints s in the fixed debug font with its top-left at (x, y).
	DebugText(s string, x, y float64)
}

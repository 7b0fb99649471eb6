package scrollreel

// CoverFit scales an image of imgW x imgH so that it fully covers a canvas
// of canvasW x canvasH while keeping its aspect ratio. The overflowing axis
// is centered (its offset is zero or negative); the other axis matches the
// canvas exactly. Non-positive sizes yield the canvas rectangle.
func CoverFit(canvasW, canvasH, imgW, imgH float64) Rect {
	if canvasW <= 0 || canvasH <= 0 || imgW <= 0 || imgH <= 0 {
		return Rect{Width: canvasW, Height: canvasH}
	}
	canvasAspect := canvasW / canvasH
	imgAspect := imgW / imgH

	if canvasAspect > imgAspect {
		// Canvas is wider: match width, crop top and bottom.
		h := imgH * canvasW / imgW
		return Rect{X: 0, Y: (canvasH - h) / 2, Width: canvasW, Height: h}
	}
	w := imgW * canvasH / imgH
	return Rect{X: (canvasW - w) / 2, Y: 0, Width: w, Height: canvasH}
}

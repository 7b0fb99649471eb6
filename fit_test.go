package scrollreel

import (
	"math"
	"testing"
)

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name           string
		cw, ch, iw, ih float64
		want           Rect
	}{
		{"same aspect", 1280, 720, 1920, 1080, Rect{0, 0, 1280, 720}},
		{"wider canvas", 1000, 400, 1600, 900, Rect{0, -81.25, 1000, 562.5}},
		{"taller canvas", 400, 800, 1600, 900, Rect{-511.1111111111111, 0, 1422.2222222222222, 800}},
		{"zero image", 640, 480, 0, 0, Rect{0, 0, 640, 480}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverFit(tt.cw, tt.ch, tt.iw, tt.ih)
			if !rectNear(got, tt.want) {
				t.Errorf("CoverFit(%v, %v, %v, %v) = %+v, want %+v", tt.cw, tt.ch, tt.iw, tt.ih, got, tt.want)
			}
		})
	}
}

func TestCoverFitLaw(t *testing.T) {
	sizes := [][2]float64{{1280, 720}, {720, 1280}, {500, 500}, {1920, 1080}, {375, 812}, {3, 1000}}
	for _, c := range sizes {
		for _, i := range sizes {
			r := CoverFit(c[0], c[1], i[0], i[1])
			if r.Width < c[0]-1e-9 || r.Height < c[1]-1e-9 {
				t.Errorf("canvas %v image %v: %+v does not cover", c, i, r)
			}
			if math.Abs(r.X-(c[0]-r.Width)/2) > 1e-9 || math.Abs(r.Y-(c[1]-r.Height)/2) > 1e-9 {
				t.Errorf("canvas %v image %v: %+v not centered", c, i, r)
			}
			if math.Abs(r.Width/r.Height-i[0]/i[1]) > 1e-9 {
				t.Errorf("canvas %v image %v: aspect %v, want %v", c, i, r.Width/r.Height, i[0]/i[1])
			}
		}
	}
}

func rectNear(a, b Rect) bool {
	const eps = 1e-6
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

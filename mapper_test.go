package scrollreel

import (
	"math"
	"testing"
)

func TestScrollProgress(t *testing.T) {
	tests := []struct {
		top, scrollable, want float64
	}{
		{0, 1000, 0},
		{500, 1000, 0.5},
		{1000, 1000, 1},
		{1500, 1000, 1},
		{-10, 1000, 0},
		{100, 0, 0},
		{math.NaN(), 1000, 0},
	}
	for _, tt := range tests {
		if got := ScrollProgress(tt.top, tt.scrollable); got != tt.want {
			t.Errorf("ScrollProgress(%v, %v) = %v, want %v", tt.top, tt.scrollable, got, tt.want)
		}
	}
}

func TestFrameForProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		total    int
		skip     int
		want     int
	}{
		{"start", 0, 143, 1, 1},
		{"end", 1, 143, 1, 143},
		{"half", 0.5, 143, 1, 72},
		{"tiny", 0.001, 143, 1, 1},
		{"past end", 1.2, 143, 1, 143},
		{"skip 2 rounds up", 0.5, 143, 2, 72},
		{"skip 2 odd raw", 0.01, 143, 2, 2},
		{"skip 2 end clamps", 1, 143, 2, 143},
		{"skip 3 end clamps", 1, 143, 3, 143},
		{"skip 3 middle", 0.3, 143, 3, 45},
		{"skip larger than total", 0.2, 4, 10, 4},
		{"zero total", 0.5, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameForProgress(tt.progress, tt.total, tt.skip); got != tt.want {
				t.Errorf("FrameForProgress(%v, %d, %d) = %d, want %d", tt.progress, tt.total, tt.skip, got, tt.want)
			}
		})
	}
}

func TestFrameForProgressInvariants(t *testing.T) {
	const total = 143
	for _, skip := range []int{1, 2, 3} {
		for i := 0; i <= 1000; i++ {
			p := float64(i) / 1000
			f := FrameForProgress(p, total, skip)
			if f < 1 || f > total {
				t.Fatalf("skip %d, p %v: frame %d out of range", skip, p, f)
			}
			if skip > 1 && f != total && f%skip != 0 {
				t.Fatalf("skip %d, p %v: frame %d not a multiple", skip, p, f)
			}
		}
	}
}

func TestMapScrollEnd(t *testing.T) {
	for _, skip := range []int{1, 2, 3, 7} {
		frame, p := MapScroll(1000, 1000, 143, skip)
		if frame != 143 || p != 1 {
			t.Errorf("skip %d: MapScroll(1000, 1000) = %d, %v, want 143, 1", skip, frame, p)
		}
	}
}

func TestFades(t *testing.T) {
	tests := []struct {
		name            string
		p, start, end   float64
		wantIn, wantOut float64
	}{
		{"before", 0, 0.2, 0.4, 0, 1},
		{"middle", 0.3, 0.2, 0.4, 0.5, 0.5},
		{"after", 0.9, 0.2, 0.4, 1, 0},
		{"step below", 0.1, 0.5, 0.5, 0, 1},
		{"step at", 0.5, 0.5, 0.5, 1, 0},
	}
	for _, tt := range tests {
		if got := FadeIn(tt.p, tt.start, tt.end); math.Abs(got-tt.wantIn) > 1e-9 {
			t.Errorf("%s: FadeIn = %v, want %v", tt.name, got, tt.wantIn)
		}
		if got := FadeOut(tt.p, tt.start, tt.end); math.Abs(got-tt.wantOut) > 1e-9 {
			t.Errorf("%s: FadeOut = %v, want %v", tt.name, got, tt.wantOut)
		}
	}
}

func TestNewScrollMapperInitialFrame(t *testing.T) {
	for _, tt := range []struct{ total, skip, want int }{
		{143, 1, 1},
		{143, 2, 2},
		{143, 3, 3},
		{2, 3, 2},
	} {
		if got := NewScrollMapper(tt.total, tt.skip).Frame(); got != tt.want {
			t.Errorf("NewScrollMapper(%d, %d).Frame() = %d, want %d", tt.total, tt.skip, got, tt.want)
		}
	}
}

func TestScrollMapperChangeGate(t *testing.T) {
	m := NewScrollMapper(143, 1)
	if m.Frame() != 1 {
		t.Fatalf("initial frame = %d, want 1", m.Frame())
	}

	if _, changed := m.Update(0, 1000); changed {
		t.Error("Update at top reported a change from frame 1")
	}
	frame, changed := m.Update(500, 1000)
	if !changed || frame != 72 {
		t.Errorf("Update(500) = %d, %v, want 72, true", frame, changed)
	}
	if _, changed := m.Update(500, 1000); changed {
		t.Error("repeated Update reported a change")
	}
	if _, changed := m.Update(501, 1000); changed {
		t.Error("Update within the same frame reported a change")
	}
	if m.Progress() != 0.501 {
		t.Errorf("Progress = %v, want 0.501", m.Progress())
	}
}

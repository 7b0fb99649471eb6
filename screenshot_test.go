package scrollreel

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-scroll", "after-scroll"},
		{"frame.72", "frame.72"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotQueue(t *testing.T) {
	a := newTestApp(t, testConfig(), newMemSource())
	a.Screenshot("a")
	a.Screenshot("b")
	if len(a.screenshotQueue) != 2 || a.screenshotQueue[1] != "b" {
		t.Errorf("queue = %v, want [a b]", a.screenshotQueue)
	}
	if a.Config().ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want screenshots", a.Config().ScreenshotDir)
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{
		128, 0, 0, 128,
		10, 20, 30, 255,
		0, 0, 0, 0,
	}, 3, 1)
	want := []uint8{255, 0, 0, 128, 10, 20, 30, 255, 0, 0, 0, 0}
	for i, w := range want {
		if img.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, img.Pix[i], w)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	if err := writePNG(path, image.NewNRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 4 || cfg.Height != 2 {
		t.Errorf("size = %dx%d, want 4x2", cfg.Width, cfg.Height)
	}
}

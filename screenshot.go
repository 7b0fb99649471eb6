package scrollreel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labelled capture of the next drawn frame. The PNG is
// written to Config.ScreenshotDir with a timestamped name.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots reads back the screen once and writes a PNG per queued
// label. Called by Game.Draw after the App has drawn.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	defer func() { a.screenshotQueue = a.screenshotQueue[:0] }()

	dir := a.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		a.log.Error().Err(err).Str("dir", dir).Msg("screenshot directory")
		return
	}

	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, w, h)

	stamp := time.Now().Format("20060102_150405")
	for _, label := range a.screenshotQueue {
		path := filepath.Join(dir, fmt.Sprintf("%s_f%04d_%s.png", stamp, a.scroll.CurrentFrame, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			a.log.Error().Err(err).Msg("screenshot")
			continue
		}
		a.log.Info().Str("path", path).Msg("screenshot written")
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, al := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if al > 0 && al < 255 {
			r = uint8(min(int(r)*255/int(al), 255))
			g = uint8(min(int(g)*255/int(al), 255))
			b = uint8(min(int(b)*255/int(al), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, al
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters unsafe in file names with underscores
// and falls back to "unlabeled" for empty labels.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

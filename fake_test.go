package scrollreel

import (
	"context"
	"errors"
	"image"
	"sync"
	"time"
)

// drawOp is one call recorded by recordingSurface.
type drawOp struct {
	kind  string
	rect  Rect
	color Color
	to    Color
	text  string
	align TextAlign
	alpha float64
	img   image.Image
}

type recordingSurface struct {
	w, h float64
	ops  []drawOp
}

func newRecordingSurface(w, h float64) *recordingSurface {
	return &recordingSurface{w: w, h: h}
}

func (s *recordingSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordingSurface) FillRect(r Rect, c Color) {
	s.ops = append(s.ops, drawOp{kind: "rect", rect: r, color: c})
}

func (s *recordingSurface) FillLinearGradient(r Rect, from, to Color) {
	s.ops = append(s.ops, drawOp{kind: "gradient", rect: r, color: from, to: to})
}

func (s *recordingSurface) FillCircle(cx, cy, radius float64, c Color) {
	s.ops = append(s.ops, drawOp{kind: "circle", rect: Rect{X: cx, Y: cy, Width: radius}, color: c})
}

func (s *recordingSurface) DrawText(str string, x, y, size float64, align TextAlign, c Color) {
	s.ops = append(s.ops, drawOp{kind: "text", rect: Rect{X: x, Y: y, Height: size}, text: str, align: align, color: c})
}

func (s *recordingSurface) DrawImage(img image.Image, dst Rect, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: "image", rect: dst, alpha: alpha, img: img})
}

func (s *recordingSurface) DebugText(str string, x, y float64) {
	s.ops = append(s.ops, drawOp{kind: "debug", rect: Rect{X: x, Y: y}, text: str})
}

func (s *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (s *recordingSurface) hasText(str string) bool {
	for _, op := range s.ops {
		if (op.kind == "text" || op.kind == "debug") && op.text == str {
			return true
		}
	}
	return false
}

func (s *recordingSurface) first(kind string) (drawOp, bool) {
	for _, op := range s.ops {
		if op.kind == kind {
			return op, true
		}
	}
	return drawOp{}, false
}

var errMissingFrame = errors.New("missing frame")

// memSource serves small in-memory frames. Indices in fail return an error.
// If gate is non-nil every Load blocks until it is closed or ctx is done.
type memSource struct {
	fail  map[int]bool
	gate  chan struct{}
	delay time.Duration

	mu        sync.Mutex
	started   []int
	completed int
	// doneAtStart records how many loads had completed when each index
	// started.
	doneAtStart map[int]int
	inflight    int
	maxInflight int
}

func newMemSource(fail ...int) *memSource {
	s := &memSource{fail: make(map[int]bool), doneAtStart: make(map[int]int)}
	for _, i := range fail {
		s.fail[i] = true
	}
	return s
}

func (s *memSource) Path(index int) string { return FramePath("mem/", "png", index) }

func (s *memSource) Load(ctx context.Context, index int) (image.Image, error) {
	s.mu.Lock()
	s.started = append(s.started, index)
	s.doneAtStart[index] = s.completed
	s.inflight++
	s.maxInflight = max(s.maxInflight, s.inflight)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inflight--
		s.completed++
		s.mu.Unlock()
	}()

	if s.gate != nil {
		select {
		case <-s.gate:
		case <-ctx.Done():
			return nil, &LoadError{Index: index, Path: s.Path(index), Err: ctx.Err()}
		}
	}
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	if s.fail[index] {
		return nil, &LoadError{Index: index, Path: s.Path(index), Err: errMissingFrame}
	}
	return image.NewRGBA(image.Rect(0, 0, 16, 9)), nil
}

func (s *memSource) startedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.started)
}

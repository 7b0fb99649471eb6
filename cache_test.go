package scrollreel

import (
	"image"
	"testing"
)

func TestFrameCachePutGet(t *testing.T) {
	c := NewFrameCache(4)
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	c.Put(1, img)

	got, ok := c.Get(1)
	if !ok || got != img {
		t.Errorf("Get(1) = %v, %v, want stored image", got, ok)
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) reported a miss as present")
	}
	if c.Len() != 1 || c.Loaded() != 1 {
		t.Errorf("Len, Loaded = %d, %d, want 1, 1", c.Len(), c.Loaded())
	}
}

func TestFrameCacheCounters(t *testing.T) {
	c := NewFrameCache(4)
	c.Put(1, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.Put(2, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.MarkFailed(3)
	c.MarkFailed(4)

	if c.Settled() != 4 {
		t.Errorf("Settled = %d, want 4", c.Settled())
	}
	if c.Failed() != 2 {
		t.Errorf("Failed = %d, want 2", c.Failed())
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2 (failures are not cached)", c.Len())
	}
}

func TestFrameCacheClear(t *testing.T) {
	c := NewFrameCache(2)
	c.Put(1, image.NewRGBA(image.Rect(0, 0, 1, 1)))
	c.MarkFailed(2)
	c.Clear()

	if c.Len() != 0 || c.Settled() != 0 || c.Failed() != 0 {
		t.Errorf("after Clear: Len %d Settled %d Failed %d, want all 0", c.Len(), c.Settled(), c.Failed())
	}
	if _, ok := c.Get(1); ok {
		t.Error("Get(1) after Clear reported present")
	}
}

package scrollreel

import "image"

// FrameCache maps frame indices to decoded images and counts settled loads.
// It is owned by a single goroutine (the game loop); it does no locking.
//
// There is no eviction: the sequence is small and fixed, so every frame is
// expected to fit in memory.
type FrameCache struct {
	frames map[int]image.Image
	loaded int
	failed int
}

// NewFrameCache creates an empty cache sized for totalFrames entries.
func NewFrameCache(totalFrames int) *FrameCache {
	return &FrameCache{frames: make(map[int]image.Image, max(totalFrames, 0))}
}

// Put stores a successfully loaded image, overwriting any prior entry for
// index, and increments the loaded counter.
func (c *FrameCache) Put(index int, img image.Image) {
	c.frames[index] = img
	c.loaded++
}

// MarkFailed records a failed load attempt.
func (c *FrameCache) MarkFailed(index int) {
	c.failed++
}

// Get returns the image for index and whether it is present.
func (c *FrameCache) Get(index int) (image.Image, bool) {
	img, ok := c.frames[index]
	return img, ok
}

// Clear drops all entries and resets the counters.
func (c *FrameCache) Clear() {
	clear(c.frames)
	c.loaded = 0
	c.failed = 0
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int { return len(c.frames) }

// Loaded returns the number of successful Put calls since the last Clear.
func (c *FrameCache) Loaded() int { return c.loaded }

// Failed returns the number of failed attempts since the last Clear.
func (c *FrameCache) Failed() int { return c.failed }

// Settled returns loaded + failed.
func (c *FrameCache) Settled() int { return c.loaded + c.failed }

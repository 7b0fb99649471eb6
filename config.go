package scrollreel

import (
	"fmt"
	"time"
)

// BackingScale is the fixed ratio between the drawing surface's backing
// resolution and its CSS size. The device scale factor is ignored.
const BackingScale = 2

// Config holds the player settings. It is fixed at startup.
type Config struct {
	TotalFrames    int
	ImageDirectory string
	ImageFormat    string

	PreloadBatch        int
	SlowPreloadBatch    int
	BatchDelay          time.Duration
	MobileFrameSkip     int
	SlowMobileFrameSkip int

	ScrollThrottle  time.Duration
	ResizeDebounce  time.Duration
	StartDelay      time.Duration
	FallbackTimeout time.Duration
	LoadingFadeOut  time.Duration

	// ScrollPages is the virtual document height in viewport heights.
	ScrollPages float64
	// ScrollStep is the distance in CSS px of one wheel notch or arrow key.
	ScrollStep float64

	OverlayFadeStart float64
	OverlayFadeEnd   float64
	BrandFadeStart   float64
	BrandFadeEnd     float64
	EndMessageAt     float64

	Title       string
	OverlayText string
	Brand       string
	EndMessage  string

	// ErrorModal shows the retry/continue modal when a pass ends with failures.
	ErrorModal bool
	// ReducedMotion is the initial reduced-motion preference.
	ReducedMotion bool
	// ShowStats shows the performance panel from the start.
	ShowStats bool

	ScreenshotDir string
}

// DefaultConfig returns the stock configuration for the 143-frame sequence.
func DefaultConfig() Config {
	return Config{
		TotalFrames:    143,
		ImageDirectory: "./not4k/",
		ImageFormat:    "webp",

		PreloadBatch:        20,
		SlowPreloadBatch:    10,
		BatchDelay:          50 * time.Millisecond,
		MobileFrameSkip:     2,
		SlowMobileFrameSkip: 3,

		ScrollThrottle:  16 * time.Millisecond,
		ResizeDebounce:  250 * time.Millisecond,
		StartDelay:      500 * time.Millisecond,
		FallbackTimeout: 5 * time.Second,
		LoadingFadeOut:  300 * time.Millisecond,

		ScrollPages: 5,
		ScrollStep:  100,

		OverlayFadeStart: 0,
		OverlayFadeEnd:   0.3,
		BrandFadeStart:   47.0 / 143.0,
		BrandFadeEnd:     0.5,
		EndMessageAt:     0.8,

		Title:       "Scrollreel",
		OverlayText: "Scroll to begin",
		Brand:       "Scrollreel",
		EndMessage:  "Thanks for watching",

		ErrorModal:    true,
		ScreenshotDir: "screenshots",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TotalFrames < 1 {
		return fmt.Errorf("%w: total frames must be positive", ErrInvalidConfig)
	}
	if c.ImageFormat == "" {
		return fmt.Errorf("%w: image format is required", ErrInvalidConfig)
	}
	if c.PreloadBatch < 1 || c.SlowPreloadBatch < 1 {
		return fmt.Errorf("%w: preload batch must be positive", ErrInvalidConfig)
	}
	if c.MobileFrameSkip < 1 || c.SlowMobileFrameSkip < 1 {
		return fmt.Errorf("%w: frame skip must be at least 1", ErrInvalidConfig)
	}
	if c.BatchDelay < 0 || c.ScrollThrottle < 0 || c.ResizeDebounce < 0 || c.StartDelay < 0 {
		return fmt.Errorf("%w: delays must not be negative", ErrInvalidConfig)
	}
	if c.FallbackTimeout <= 0 {
		return fmt.Errorf("%w: fallback timeout must be positive", ErrInvalidConfig)
	}
	if c.ScrollPages < 1 {
		return fmt.Errorf("%w: scroll pages must be at least 1", ErrInvalidConfig)
	}
	if c.ScrollStep <= 0 {
		return fmt.Errorf("%w: scroll step must be positive", ErrInvalidConfig)
	}
	if c.OverlayFadeEnd < c.OverlayFadeStart || c.BrandFadeEnd < c.BrandFadeStart {
		return fmt.Errorf("%w: fade end must not precede fade start", ErrInvalidConfig)
	}
	return nil
}

package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	TotalFrames         int    `toml:"total_frames"`
	ImageDirectory      string `toml:"image_directory"`
	ImageFormat         string `toml:"image_format"`
	PreloadBatch        int    `toml:"preload_batch"`
	SlowPreloadBatch    int    `toml:"slow_preload_batch"`
	BatchDelay          string `toml:"batch_delay"`
	MobileFrameSkip     int    `toml:"mobile_frame_skip"`
	SlowMobileFrameSkip int    `toml:"slow_mobile_frame_skip"`

	ScrollThrottle  string `toml:"scroll_throttle"`
	ResizeDebounce  string `toml:"resize_debounce"`
	StartDelay      string `toml:"start_delay"`
	FallbackTimeout string `toml:"fallback_timeout"`

	ScrollPages      *float64 `toml:"scroll_pages"`
	ScrollStep       *float64 `toml:"scroll_step"`
	OverlayFadeStart *float64 `toml:"overlay_fade_start"`
	OverlayFadeEnd   *float64 `toml:"overlay_fade_end"`
	BrandFadeStart   *float64 `toml:"brand_fade_start"`
	BrandFadeEnd     *float64 `toml:"brand_fade_end"`
	EndMessageAt     *float64 `toml:"end_message_at"`

	Title       string `toml:"title"`
	OverlayText string `toml:"overlay_text"`
	Brand       string `toml:"brand"`
	EndMessage  string `toml:"end_message"`

	ErrorModal    *bool  `toml:"error_modal"`
	ReducedMotion *bool  `toml:"reduced_motion"`
	ShowStats     *bool  `toml:"show_stats"`
	ScreenshotDir string `toml:"screenshot_dir"`

	Connection string `toml:"connection"`
	Mobile     *bool  `toml:"mobile"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Watch      *bool  `toml:"watch"`
	LogLevel   string `toml:"log_level"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.scrollreel/config.toml, or "" if the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".scrollreel", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("frames", fc.TotalFrames, &cfg.TotalFrames)
	s.setString("images", fc.ImageDirectory, &cfg.ImageDirectory)
	s.setString("format", fc.ImageFormat, &cfg.ImageFormat)
	s.setInt("batch", fc.PreloadBatch, &cfg.PreloadBatch)
	s.setInt("slow-batch", fc.SlowPreloadBatch, &cfg.SlowPreloadBatch)
	s.setInt("mobile-skip", fc.MobileFrameSkip, &cfg.MobileFrameSkip)
	s.setInt("slow-mobile-skip", fc.SlowMobileFrameSkip, &cfg.SlowMobileFrameSkip)

	if err := s.setDuration("batch-delay", fc.BatchDelay, &cfg.BatchDelay); err != nil {
		return err
	}
	if err := s.setDuration("scroll-throttle", fc.ScrollThrottle, &cfg.ScrollThrottle); err != nil {
		return err
	}
	if err := s.setDuration("resize-debounce", fc.ResizeDebounce, &cfg.ResizeDebounce); err != nil {
		return err
	}
	if err := s.setDuration("start-delay", fc.StartDelay, &cfg.StartDelay); err != nil {
		return err
	}
	if err := s.setDuration("fallback-timeout", fc.FallbackTimeout, &cfg.FallbackTimeout); err != nil {
		return err
	}

	s.setFloat("scroll-pages", fc.ScrollPages, &cfg.ScrollPages)
	s.setFloat("scroll-step", fc.ScrollStep, &cfg.ScrollStep)
	s.setFloat("overlay-fade-start", fc.OverlayFadeStart, &cfg.OverlayFadeStart)
	s.setFloat("overlay-fade-end", fc.OverlayFadeEnd, &cfg.OverlayFadeEnd)
	s.setFloat("brand-fade-start", fc.BrandFadeStart, &cfg.BrandFadeStart)
	s.setFloat("brand-fade-end", fc.BrandFadeEnd, &cfg.BrandFadeEnd)
	s.setFloat("end-message-at", fc.EndMessageAt, &cfg.EndMessageAt)

	s.setString("title", fc.Title, &cfg.Title)
	s.setString("overlay-text", fc.OverlayText, &cfg.OverlayText)
	s.setString("brand", fc.Brand, &cfg.Brand)
	s.setString("end-message", fc.EndMessage, &cfg.EndMessage)
	s.setString("screenshot-dir", fc.ScreenshotDir, &cfg.ScreenshotDir)

	s.setBool("error-modal", fc.ErrorModal, &cfg.ErrorModal)
	s.setBool("reduced-motion", fc.ReducedMotion, &cfg.ReducedMotion)
	s.setBool("stats", fc.ShowStats, &cfg.ShowStats)

	s.setString("connection", fc.Connection, &cfg.Connection)
	s.setBool("mobile", fc.Mobile, &cfg.Mobile)
	s.setInt("width", fc.Width, &cfg.Width)
	s.setInt("height", fc.Height, &cfg.Height)
	s.setBool("watch", fc.Watch, &cfg.Watch)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables
// (SCROLLREEL_*). It respects flags that have been explicitly set (changed
// map) and returns an error if a variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("frames", os.Getenv("SCROLLREEL_TOTAL_FRAMES"), &cfg.TotalFrames); err != nil {
		return err
	}
	s.setString("images", os.Getenv("SCROLLREEL_IMAGE_DIRECTORY"), &cfg.ImageDirectory)
	s.setString("format", os.Getenv("SCROLLREEL_IMAGE_FORMAT"), &cfg.ImageFormat)
	if err := s.setIntFromString("batch", os.Getenv("SCROLLREEL_PRELOAD_BATCH"), &cfg.PreloadBatch); err != nil {
		return err
	}
	if err := s.setIntFromString("slow-batch", os.Getenv("SCROLLREEL_SLOW_PRELOAD_BATCH"), &cfg.SlowPreloadBatch); err != nil {
		return err
	}
	if err := s.setDuration("batch-delay", os.Getenv("SCROLLREEL_BATCH_DELAY"), &cfg.BatchDelay); err != nil {
		return err
	}
	if err := s.setDuration("fallback-timeout", os.Getenv("SCROLLREEL_FALLBACK_TIMEOUT"), &cfg.FallbackTimeout); err != nil {
		return err
	}
	if err := s.setFloatFromString("scroll-pages", os.Getenv("SCROLLREEL_SCROLL_PAGES"), &cfg.ScrollPages); err != nil {
		return err
	}

	s.setString("title", os.Getenv("SCROLLREEL_TITLE"), &cfg.Title)
	s.setString("connection", os.Getenv("SCROLLREEL_CONNECTION"), &cfg.Connection)
	s.setString("screenshot-dir", os.Getenv("SCROLLREEL_SCREENSHOT_DIR"), &cfg.ScreenshotDir)
	s.setString("log-level", os.Getenv("SCROLLREEL_LOG_LEVEL"), &cfg.LogLevel)

	s.setBoolFromString("reduced-motion", os.Getenv("SCROLLREEL_REDUCED_MOTION"), &cfg.ReducedMotion)
	s.setBoolFromString("mobile", os.Getenv("SCROLLREEL_MOBILE"), &cfg.Mobile)
	s.setBoolFromString("stats", os.Getenv("SCROLLREEL_SHOW_STATS"), &cfg.ShowStats)
	s.setBoolFromString("watch", os.Getenv("SCROLLREEL_WATCH"), &cfg.Watch)

	return nil
}

// Package scrollreel plays a numbered image sequence as a scroll-linked
// animation on [Ebitengine].
//
// Frames are fetched in batches from a [FrameSource] (a directory or an
// HTTP base URL) into a [FrameCache]. The scroll position of a virtual
// document several viewports tall is mapped to a frame number by a
// [ScrollMapper], and the frame is drawn cover-fitted to the screen. Frames
// that are not (yet) available are replaced by a generated placeholder, so
// the animation runs even when every image fails to load.
//
// # Lifecycle
//
// An [App] moves through four phases:
//
//	Initializing -> Loading -> Rendering
//	                   ^          |
//	                   +-Retrying-+
//
// Loading starts after [Config.StartDelay]. Rendering starts when the
// loader pass settles or when [Config.FallbackTimeout] expires, whichever
// comes first. A retry discards the cache and starts a new pass; results of
// the superseded pass are dropped.
//
// # Running
//
// [Run] opens a window and drives the App through a [Game]:
//
//	cfg := scrollreel.DefaultConfig()
//	src := scrollreel.NewSource(cfg.ImageDirectory, cfg.ImageFormat)
//	caps := scrollreel.DetectCapabilities(scrollreel.DetectPlatform(), "", false)
//	app := scrollreel.NewApp(cfg, src, scrollreel.WithCapabilities(caps))
//	input := scrollreel.NewInputPoller(cfg.ScrollStep, scrollreel.DetectPlatform())
//	err := scrollreel.Run(app, input, scrollreel.RunOptions{Title: cfg.Title})
//
// For full control, call [App.Dispatch], [App.Tick] and [App.Draw] from your
// own ebiten.Game with any [Surface] implementation.
//
// # Scripted runs
//
// A JSON script loaded with [LoadTestScript] and attached with
// [App.SetTestRunner] drives scrolling, toggles and screenshots without
// user input:
//
//	{"steps": [
//		{"action": "wait-loaded"},
//		{"action": "scroll-fraction", "fraction": 0.5, "frames": 30},
//		{"action": "screenshot", "label": "half"}
//	]}
//
// [Ebitengine]: https://ebitengine.org
package scrollreel

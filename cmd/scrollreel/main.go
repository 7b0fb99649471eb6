package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/phanxgames/scrollreel"
	"github.com/phanxgames/scrollreel/internal/cliconfig"
	"github.com/phanxgames/scrollreel/internal/framewatch"
)

const longHelp = `Play a numbered image sequence as a scroll-linked animation.

Frames are loaded in batches from a directory or an HTTP base URL and mapped
to the scroll position of a virtual page several screens tall. Frames that
fail to load are replaced by generated placeholders.

Keys:
  wheel, arrows, PgUp/PgDn, Space, Home/End   scroll
  M   toggle reduced motion
  P   toggle performance stats
  R   retry loading
  C   dismiss the error modal`

var exampleUsage = strings.TrimSpace(`
  scrollreel --images ./not4k/ --format webp
  scrollreel --images https://cdn.example.com/reel/ --frames 143 --connection 2g
  scrollreel --script smoke.json --exit-after-script
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "scrollreel",
		Short:   "Scroll-linked frame sequence player",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log = cliconfig.LeveledLogger(cfg.LogLevel)
			scrollreel.SetLogger(log)
			log.Debug().Interface("config", cfg).Msg("configuration")

			return run(cmd.Context(), cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.scrollreel/config.toml)")
	f.IntVar(&cfg.TotalFrames, "frames", cfg.TotalFrames, "number of frames in the sequence")
	f.StringVar(&cfg.ImageDirectory, "images", cfg.ImageDirectory, "frame directory or http(s) base URL")
	f.StringVar(&cfg.ImageFormat, "format", cfg.ImageFormat, "frame file extension (webp, png, jpg)")
	f.IntVar(&cfg.PreloadBatch, "batch", cfg.PreloadBatch, "frames loaded concurrently per batch")
	f.IntVar(&cfg.SlowPreloadBatch, "slow-batch", cfg.SlowPreloadBatch, "batch size on slow connections")
	f.DurationVar(&cfg.BatchDelay, "batch-delay", cfg.BatchDelay, "pause between batches")
	f.IntVar(&cfg.MobileFrameSkip, "mobile-skip", cfg.MobileFrameSkip, "frame skip on mobile")
	f.IntVar(&cfg.SlowMobileFrameSkip, "slow-mobile-skip", cfg.SlowMobileFrameSkip, "frame skip on mobile with a slow connection")
	f.DurationVar(&cfg.ScrollThrottle, "scroll-throttle", cfg.ScrollThrottle, "minimum interval between scroll updates")
	f.DurationVar(&cfg.ResizeDebounce, "resize-debounce", cfg.ResizeDebounce, "quiet period before a resize is applied")
	f.DurationVar(&cfg.StartDelay, "start-delay", cfg.StartDelay, "delay before loading starts")
	f.DurationVar(&cfg.FallbackTimeout, "fallback-timeout", cfg.FallbackTimeout, "start the animation after this long even if loading is incomplete")
	f.Float64Var(&cfg.ScrollPages, "scroll-pages", cfg.ScrollPages, "virtual page height in screens")
	f.Float64Var(&cfg.ScrollStep, "scroll-step", cfg.ScrollStep, "pixels scrolled per wheel notch or arrow key")
	f.StringVar(&cfg.Title, "title", cfg.Title, "window and placeholder title")
	f.StringVar(&cfg.OverlayText, "overlay-text", cfg.OverlayText, "intro overlay text")
	f.StringVar(&cfg.Brand, "brand", cfg.Brand, "brand label")
	f.StringVar(&cfg.EndMessage, "end-message", cfg.EndMessage, "message shown near the end")
	f.BoolVar(&cfg.ErrorModal, "error-modal", cfg.ErrorModal, "show the retry modal when frames fail to load")
	f.BoolVar(&cfg.ReducedMotion, "reduced-motion", cfg.ReducedMotion, "start with reduced motion")
	f.BoolVar(&cfg.ShowStats, "stats", cfg.ShowStats, "show the performance panel")
	f.StringVar(&cfg.ScreenshotDir, "screenshot-dir", cfg.ScreenshotDir, "directory for scripted screenshots")

	f.StringVar(&cfg.Connection, "connection", cfg.Connection, "network effective type override (slow-2g, 2g, 3g, 4g)")
	f.BoolVar(&cfg.Mobile, "mobile", cfg.Mobile, "force mobile frame skipping")
	f.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	f.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	f.StringVar(&cfg.Script, "script", cfg.Script, "JSON test script to run")
	f.BoolVar(&cfg.ExitAfterScript, "exit-after-script", cfg.ExitAfterScript, "quit when the script finishes")
	f.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload frames when files in the image directory change")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("scrollreel")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config) error {
	log := scrollreel.Logger()
	platform := scrollreel.DetectPlatform()

	caps := scrollreel.DetectCapabilities(platform, cfg.Connection, cfg.ReducedMotion)
	caps.Mobile = caps.Mobile || cfg.Mobile

	app := scrollreel.NewApp(cfg.Config,
		scrollreel.NewSource(cfg.ImageDirectory, cfg.ImageFormat),
		scrollreel.WithCapabilities(caps),
		scrollreel.WithViewport(scrollreel.Viewport{Width: float64(cfg.Width), Height: float64(cfg.Height)}),
	)

	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err := scrollreel.LoadTestScript(data)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner)
	}

	if cfg.Watch {
		if scrollreel.IsRemote(cfg.ImageDirectory) {
			log.Warn().Str("images", cfg.ImageDirectory).Msg("--watch ignored for remote frame sources")
		} else {
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			w := framewatch.New(framewatch.PrefixDir(cfg.ImageDirectory), cfg.ImageFormat, log, func([]string) {
				app.Post(scrollreel.Event{Type: scrollreel.EventRetry})
			})
			go func() {
				if err := w.Run(ctx); err != nil {
					log.Warn().Err(err).Msg("frame watcher stopped")
				}
			}()
		}
	}

	input := scrollreel.NewInputPoller(cfg.ScrollStep, platform)
	return scrollreel.Run(app, input, scrollreel.RunOptions{
		Title:              cfg.Title,
		Width:              cfg.Width,
		Height:             cfg.Height,
		ExitWhenScriptDone: cfg.ExitAfterScript,
	})
}

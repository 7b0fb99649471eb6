package scrollreel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

// DefaultViewport is used until the first resize.
var DefaultViewport = Viewport{Width: 1280, Height: 720}

// loadDone signals the end of a loader pass.
type loadDone struct {
	stats LoadStats
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the App's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithCapabilities sets the detected host capabilities.
func WithCapabilities(c Capabilities) Option {
	return func(a *App) { a.caps = c }
}

// WithViewport sets the initial viewport.
func WithViewport(v Viewport) Option {
	return func(a *App) { a.view = v }
}

// App orchestrates loading, scroll mapping, and rendering. All methods
// except Post must be called from the game-loop goroutine; loader
// goroutines and watchers talk to it through Post and the internal inbox.
type App struct {
	cfg    Config
	caps   Capabilities
	source FrameSource
	log    zerolog.Logger

	cache    *FrameCache
	mapper   *ScrollMapper
	renderer Renderer

	phase     Phase
	paused    bool
	load      LoadState
	scroll    ScrollState
	view      Viewport
	showStats bool
	modal     bool
	redraws   int

	started  bool
	startAt  time.Time
	deadline time.Time
	lastTick time.Time

	throttle      Throttle
	scrollPending bool
	resize        Debouncer
	pendingView   Viewport

	inbox  chan any
	ctx    context.Context
	cancel context.CancelFunc

	loadingAlpha *Fader
	progressBar  *Fader
	fps          func() float64
	debug        debugStats

	injectQueue     []Event
	screenshotQueue []string
	runner          *TestRunner
}

// NewApp creates an App in PhaseInitializing. Call Start before the first
// Tick.
func NewApp(cfg Config, source FrameSource, opts ...Option) *App {
	ctx, cancel := context.WithCancel(context.Background())
	a := &App{
		cfg:          cfg,
		source:       source,
		log:          logger,
		cache:        NewFrameCache(cfg.TotalFrames),
		view:         DefaultViewport,
		showStats:    cfg.ShowStats,
		inbox:        make(chan any, cfg.TotalFrames+64),
		ctx:          ctx,
		cancel:       cancel,
		loadingAlpha: NewFader(1),
		progressBar:  NewFader(0),
		throttle:     Throttle{Limit: cfg.ScrollThrottle},
		resize:       Debouncer{Wait: cfg.ResizeDebounce},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.scroll = ScrollState{
		ReducedMotion: cfg.ReducedMotion || a.caps.ReducedMotion,
	}
	a.updateDevice()
	a.mapper = NewScrollMapper(cfg.TotalFrames, a.scroll.FrameSkip)
	a.scroll.CurrentFrame = a.mapper.Frame()
	a.renderer = Renderer{TotalFrames: cfg.TotalFrames, Title: cfg.Title}
	return a
}

// Start arms the start delay and the fallback deadline.
func (a *App) Start(now time.Time) {
	if a.started {
		return
	}
	a.started = true
	a.phase = PhaseInitializing
	a.startAt = now.Add(a.cfg.StartDelay)
	a.deadline = now.Add(a.cfg.FallbackTimeout)
	a.lastTick = now
	a.log.Info().
		Str("connection", a.caps.Connection).
		Bool("mobile", a.scroll.Mobile).
		Int("frame_skip", a.scroll.FrameSkip).
		Int("batch_size", a.caps.BatchSize(a.cfg)).
		Bool("reduced_motion", a.scroll.ReducedMotion).
		Msg("starting")
}

// Close stops issuing new loader batches. In-flight loads settle on their own.
func (a *App) Close() {
	a.cancel()
}

// Post delivers an event from any goroutine. It is applied on the next Tick.
func (a *App) Post(ev Event) {
	select {
	case a.inbox <- ev:
	case <-a.ctx.Done():
	}
}

// Tick advances the App to now: it applies queued events and loader
// results, runs timers, and recomputes scroll and geometry.
func (a *App) Tick(now time.Time) {
	if !a.started {
		a.Start(now)
	}
	t0 := time.Now()
	dt := float32(now.Sub(a.lastTick).Seconds())
	if dt < 0 {
		dt = 0
	}
	a.lastTick = now

	drained := a.drain(now)

	switch a.phase {
	case PhaseInitializing:
		if !now.Before(a.startAt) {
			a.beginPass()
		}
	case PhaseRetrying:
		a.beginPass()
	}

	if !a.load.AnimationStarted && !a.deadline.IsZero() && !now.Before(a.deadline) {
		a.log.Warn().Err(ErrLoadTimeout).
			Int("settled", a.load.Attempted).
			Int("total", a.cfg.TotalFrames).
			Msg("starting animation with fallback after timeout")
		a.startAnimation(true)
	}

	a.processInjected(now)
	if a.runner != nil {
		a.runner.step(a, now)
	}

	if a.resize.Ready(now) {
		a.applyResize()
	}
	if a.scrollPending && a.throttle.Allow(now) {
		a.scrollPending = false
		a.applyScroll()
	}

	a.loadingAlpha.Update(dt)
	a.progressBar.Update(dt)
	a.debug.observeTick(time.Since(t0), drained)
}

// drain applies everything queued on the inbox without blocking.
func (a *App) drain(now time.Time) int {
	n := 0
	for {
		select {
		case msg := <-a.inbox:
			n++
			switch m := msg.(type) {
			case Event:
				a.Dispatch(m, now)
			case LoadResult:
				a.handleResult(m)
			case loadDone:
				a.handleDone(m.stats)
			}
		default:
			return n
		}
	}
}

// Dispatch applies one input event.
func (a *App) Dispatch(ev Event, now time.Time) {
	scrollable := a.view.Scrollable(a.cfg.ScrollPages)
	switch ev.Type {
	case EventScrollBy:
		a.setScrollTop(a.scroll.Top+ev.Delta, scrollable)
	case EventScrollTo:
		a.setScrollTop(ev.Value, scrollable)
	case EventScrollToFraction:
		a.setScrollTop(clamp01(ev.Value)*scrollable, scrollable)
	case EventResize:
		if ev.Width <= 0 || ev.Height <= 0 {
			return
		}
		a.pendingView = Viewport{Width: ev.Width, Height: ev.Height}
		a.resize.Trigger(now)
	case EventVisibility:
		if ev.Hidden == a.paused {
			return
		}
		a.paused = ev.Hidden
		a.log.Debug().Bool("paused", a.paused).Msg("visibility changed")
	case EventReducedMotion:
		a.setReducedMotion(ev.Enabled)
	case EventToggleReducedMotion:
		a.setReducedMotion(!a.scroll.ReducedMotion)
	case EventToggleStats:
		a.showStats = !a.showStats
	case EventRetry:
		a.Retry(now)
	case EventDismissModal:
		a.modal = false
	}
}

func (a *App) setScrollTop(top, scrollable float64) {
	a.scroll.Top = min(max(top, 0), scrollable)
	a.scrollPending = true
}

func (a *App) setReducedMotion(on bool) {
	if a.scroll.ReducedMotion == on {
		return
	}
	a.scroll.ReducedMotion = on
	a.log.Info().Bool("reduced_motion", on).Msg("motion preference changed")
	if !on {
		a.scrollPending = true
	}
}

// applyScroll maps the scroll position to a frame. Scrolling is ignored
// while reduced motion is on or before the animation starts.
func (a *App) applyScroll() {
	if a.scroll.ReducedMotion || !a.load.AnimationStarted {
		return
	}
	frame, changed := a.mapper.Update(a.scroll.Top, a.view.Scrollable(a.cfg.ScrollPages))
	a.scroll.Progress = a.mapper.Progress()
	if changed {
		a.scroll.CurrentFrame = frame
		a.redraws++
	}
}

func (a *App) applyResize() {
	a.view = a.pendingView
	a.updateDevice()
	a.setScrollTop(a.scroll.Top, a.view.Scrollable(a.cfg.ScrollPages))
	a.log.Debug().
		Float64("width", a.view.Width).
		Float64("height", a.view.Height).
		Int("frame_skip", a.scroll.FrameSkip).
		Msg("viewport resized")
}

// updateDevice re-evaluates mobile handling for the current viewport width
// and the frame skip that follows from it.
func (a *App) updateDevice() {
	caps := a.caps
	caps.Mobile = caps.Mobile || IsMobile(caps.UserAgent, a.view.Width)
	a.scroll.Mobile = caps.Mobile
	a.scroll.FrameSkip = caps.FrameSkip(a.cfg)
	if a.mapper == nil {
		return
	}
	a.mapper.FrameSkip = a.scroll.FrameSkip
	if !a.load.AnimationStarted {
		a.mapper.frame = FrameForProgress(a.scroll.Progress, a.cfg.TotalFrames, a.scroll.FrameSkip)
		a.scroll.CurrentFrame = a.mapper.frame
	}
}

// beginPass starts a fresh loader pass from frame 1.
func (a *App) beginPass() {
	pass := uuid.New()
	a.load.Pass = pass
	a.load.Loading = true
	if !a.load.AnimationStarted {
		a.phase = PhaseLoading
	}

	loader := &BatchLoader{
		Source:      a.source,
		TotalFrames: a.cfg.TotalFrames,
		BatchSize:   a.caps.BatchSize(a.cfg),
		BatchDelay:  a.cfg.BatchDelay,
		Log:         a.log,
	}
	ctx := a.ctx
	go func() {
		stats := loader.Run(ctx, pass, func(r LoadResult) {
			select {
			case a.inbox <- r:
			case <-ctx.Done():
			}
		})
		select {
		case a.inbox <- loadDone{stats: stats}:
		case <-ctx.Done():
		}
	}()
}

func (a *App) handleResult(r LoadResult) {
	if r.Pass != a.load.Pass {
		a.log.Debug().Str("pass", r.Pass.String()).Int("frame", r.Index).Msg("discarding result of superseded pass")
		return
	}
	if r.Err != nil {
		a.cache.MarkFailed(r.Index)
	} else {
		a.cache.Put(r.Index, r.Image)
	}
	a.load.Attempted = a.cache.Settled()
	a.load.Failed = a.cache.Failed()
	if a.cfg.TotalFrames > 0 {
		a.progressBar.To(float64(a.load.Attempted)/float64(a.cfg.TotalFrames), 0.15, ease.OutQuad)
	}
}

func (a *App) handleDone(stats LoadStats) {
	if stats.Pass != a.load.Pass {
		return
	}
	a.load.Loading = false
	if a.load.Failed > 0 {
		a.log.Warn().Int("failed", a.load.Failed).Int("succeeded", a.load.Succeeded()).Msg(a.Status())
		if a.cfg.ErrorModal {
			a.modal = true
		}
	}
	a.startAnimation(false)
}

// startAnimation switches to rendering. It is a no-op once started, so the
// completion path and the timeout path may both call it.
func (a *App) startAnimation(fallback bool) {
	if a.load.AnimationStarted {
		return
	}
	a.load.AnimationStarted = true
	a.load.Fallback = fallback
	a.phase = PhaseRendering
	a.loadingAlpha.To(0, float32(a.cfg.LoadingFadeOut.Seconds()), ease.OutQuad)
	a.scrollPending = true
	a.log.Info().Bool("fallback", fallback).Int("cached", a.cache.Len()).Msg("starting animation")
}

// Retry discards the cache and counters and schedules a new pass from
// frame 1. In-flight requests of the old pass are not aborted; their
// results are dropped when they arrive.
func (a *App) Retry(now time.Time) {
	a.log.Info().Str("previous_pass", a.load.Pass.String()).Msg("retrying")
	a.cache.Clear()
	a.load = LoadState{}
	a.modal = false
	a.phase = PhaseRetrying
	a.deadline = now.Add(a.cfg.FallbackTimeout)
	a.loadingAlpha.Set(1)
	a.progressBar.Set(0)
	a.throttle.Reset()
}

// Status is the informational status line.
func (a *App) Status() string {
	if a.load.Failed > 0 {
		return fmt.Sprintf("%d images failed to load - using demo mode", a.load.Failed)
	}
	return a.caps.ConnectionLabel()
}

// Phase returns the current phase.
func (a *App) Phase() Phase { return a.phase }

// Paused reports whether the page is hidden.
func (a *App) Paused() bool { return a.paused }

// Cache returns the frame cache. Callers must not mutate it.
func (a *App) Cache() *FrameCache { return a.cache }

// LoadState returns a copy of the loading counters.
func (a *App) LoadState() LoadState { return a.load }

// ScrollState returns a copy of the scroll state.
func (a *App) ScrollState() ScrollState { return a.scroll }

// Viewport returns the applied viewport.
func (a *App) Viewport() Viewport { return a.view }

// Config returns the App's configuration.
func (a *App) Config() Config { return a.cfg }

// ModalVisible reports whether the error modal is shown.
func (a *App) ModalVisible() bool { return a.modal }

// StatsVisible reports whether the performance panel is shown.
func (a *App) StatsVisible() bool { return a.showStats }

// Redraws counts frame changes produced by scrolling.
func (a *App) Redraws() int { return a.redraws }

// Draw renders the current frame and HUD. Nothing is drawn while paused;
// it reports whether anything was drawn.
func (a *App) Draw(s Surface, now time.Time) bool {
	if a.paused {
		return false
	}
	t0 := time.Now()
	a.renderer.Dimmed = a.scroll.ReducedMotion
	a.renderer.Draw(s, a.cache, a.scroll.CurrentFrame, now)
	a.drawHUD(s)
	a.debug.observeDraw(time.Since(t0))
	a.debug.maybeLog(a.log, now, a.cache.Len())
	return true
}

var errClosed = errors.New("scrollreel: app closed")

// Err reports errClosed once Close has been called.
func (a *App) Err() error {
	if a.ctx.Err() != nil {
		return errClosed
	}
	return nil
}

package scrollreel

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunOptions configures the window created by Run.
type RunOptions struct {
	Title  string
	Width  int
	Height int
	// ExitWhenScriptDone ends the game loop once an attached test runner
	// finishes and its screenshots are written.
	ExitWhenScriptDone bool
}

// Game adapts an App to ebiten.Game. The screen is laid out at
// BackingScale times the window size and drawn in CSS pixels.
type Game struct {
	app     *App
	input   *InputPoller
	surface *EbitenSurface
	events  []Event
	pass    uuid.UUID

	outW, outH         int
	exitWhenScriptDone bool
}

// NewGame wraps app. input may be nil for a game that only reacts to
// posted and injected events.
func NewGame(app *App, input *InputPoller) (*Game, error) {
	surface, err := NewEbitenSurface()
	if err != nil {
		return nil, err
	}
	if app.fps == nil {
		app.fps = ebiten.ActualFPS
	}
	return &Game{app: app, input: input, surface: surface}, nil
}

// App returns the wrapped App.
func (g *Game) App() *App { return g.app }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := time.Now()
	if g.input != nil {
		g.events = g.input.Poll(g.events[:0], now, g.app.Viewport().Height)
		for _, ev := range g.events {
			g.app.Dispatch(ev, now)
		}
	}
	g.app.Tick(now)

	if pass := g.app.LoadState().Pass; pass != g.pass {
		g.surface.Purge()
		g.pass = pass
	}
	if err := g.app.Err(); err != nil {
		return ebiten.Termination
	}
	if g.exitWhenScriptDone && g.app.ScriptDone() && len(g.app.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	if g.app.Draw(g.surface, time.Now()) {
		g.app.flushScreenshots(screen)
	}
}

// Layout implements ebiten.Game. A change of the outside size is dispatched
// to the App as a resize event. Layout runs on the game goroutine, so it
// must not block on the inbox that only this goroutine drains.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.outW || outsideHeight != g.outH {
		g.outW, g.outH = outsideWidth, outsideHeight
		g.app.Dispatch(Event{Type: EventResize, Width: float64(outsideWidth), Height: float64(outsideHeight)}, time.Now())
	}
	return outsideWidth * BackingScale, outsideHeight * BackingScale
}

// Run opens a window and runs app until it is closed or an attached script
// finishes. The App is closed on return.
func Run(app *App, input *InputPoller, opts RunOptions) error {
	game, err := NewGame(app, input)
	if err != nil {
		return err
	}
	game.exitWhenScriptDone = opts.ExitWhenScriptDone
	defer app.Close()

	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = int(app.Viewport().Width), int(app.Viewport().Height)
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetRunnableOnUnfocused(true)

	app.log.Info().Str("title", opts.Title).Int("width", opts.Width).Int("height", opts.Height).Msg("opening window")
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/internal/logging"
	"github.com/katalvlaran/astarviz/session"
)

const helpLine = "left: place  right: erase  space: search  c: clear  q: quit"

// AppOption configures an App.
type AppOption func(*App)

// WithFrameDelay sets the pause after each animated step.
func WithFrameDelay(d time.Duration) AppOption {
	return func(a *App) {
		if d >= 0 {
			a.frameDelay = d
		}
	}
}

// WithAppLogger sets the App logger.
func WithAppLogger(l *slog.Logger) AppOption {
	return func(a *App) {
		if l != nil {
			a.log = l
		}
	}
}

// WithPalette overrides DefaultPalette.
func WithPalette(p Palette) AppOption {
	return func(a *App) { a.palette = p }
}

// App drives one session from terminal input. Drawing and searching run on
// the goroutine that called Run; a second goroutine only polls the screen
// for events.
type App struct {
	screen     tcell.Screen
	sess       *session.State
	view       *View
	palette    Palette
	frameDelay time.Duration
	log        *slog.Logger

	events chan tcell.Event
	status string
	quit   bool
}

// NewApp wires a session to an initialised screen.
func NewApp(screen tcell.Screen, sess *session.State, opts ...AppOption) *App {
	a := &App{
		screen:     screen,
		sess:       sess,
		palette:    DefaultPalette(),
		frameDelay: 10 * time.Millisecond,
		log:        logging.NewNop(),
		events:     make(chan tcell.Event, 100),
		status:     helpLine,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.view = NewView(screen, a.palette)
	return a
}

// Status returns the current status line.
func (a *App) Status() string { return a.status }

// Quit reports whether a quit key has been seen.
func (a *App) Quit() bool { return a.quit }

// Run polls events until quit or ctx is done. The caller owns the screen
// and calls Fini after Run returns.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	done := make(chan struct{})
	defer close(done)
	go a.poll(done)

	a.Redraw()
	for !a.quit {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-a.events:
			a.HandleEvent(ctx, ev)
		}
	}
	return nil
}

func (a *App) poll(done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-done:
			return
		}
	}
}

// Redraw paints the whole board and the status line.
func (a *App) Redraw() {
	a.view.Draw(a.sess.Grid)
	a.view.Status(a.sess.Grid, a.status)
	a.view.Show()
}

// HandleEvent applies one input event to the session.
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.Redraw()
	case *tcell.EventKey:
		a.handleKey(ctx, ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func (a *App) handleKey(ctx context.Context, ev *tcell.EventKey) {
	if isQuit(ev) {
		a.quit = true
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case ' ':
		a.search(ctx)
	case 'c':
		a.sess.Clear()
		a.status = helpLine
		a.Redraw()
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	row, col, ok := a.view.CellAt(a.sess.Grid, x, y)
	if !ok {
		return
	}
	var err error
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		err = a.sess.Place(row, col)
	case ev.Buttons()&tcell.Button2 != 0:
		err = a.sess.Erase(row, col)
	default:
		return
	}
	if err != nil {
		a.log.Debug("click ignored", "row", row, "col", col, "err", err)
		return
	}
	a.view.DrawCell(a.sess.Grid.MustAt(row, col))
	a.view.Show()
}

func (a *App) search(ctx context.Context) {
	if !a.sess.Ready() {
		return
	}
	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	res, err := a.sess.Run(searchCtx, func(c *grid.Cell) {
		a.view.DrawCell(c)
		a.view.Show()
		if a.frameDelay > 0 {
			time.Sleep(a.frameDelay)
		}
		a.drain(cancel)
	})
	switch {
	case err != nil:
		a.status = err.Error()
	case res.Found():
		a.status = fmt.Sprintf("path found: cost %d, expanded %d  (c: clear)", res.Cost, res.Expanded)
	default:
		a.status = fmt.Sprintf("%s after %d expansions  (c: clear)", res.Outcome, res.Expanded)
	}
	a.Redraw()
}

// drain consumes events queued during a search. Clicks are dropped; a quit
// key cancels the search and ends the app.
func (a *App) drain(cancel context.CancelFunc) {
	for {
		select {
		case ev := <-a.events:
			if k, ok := ev.(*tcell.EventKey); ok && isQuit(k) {
				a.quit = true
				cancel()
			}
		default:
			return
		}
	}
}

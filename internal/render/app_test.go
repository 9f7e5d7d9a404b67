package render

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astarviz/grid"
	"github.com/katalvlaran/astarviz/session"
)

func newTestApp(t *testing.T, rows int) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	sess, err := session.New(rows, rows*10)
	require.NoError(t, err)
	return NewApp(screen, sess, WithFrameDelay(0)), screen
}

func click(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, tcell.ModNone)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestApp_Clicks(t *testing.T) {
	a, screen := newTestApp(t, 3)
	ctx := context.Background()

	a.HandleEvent(ctx, click(0, 0, tcell.Button1))
	a.HandleEvent(ctx, click(5, 2, tcell.Button1))
	a.HandleEvent(ctx, click(3, 1, tcell.Button1))
	assert.Equal(t, []string{"S..", ".#.", "..E"}, a.sess.Grid.Lines())
	_, _, st, _ := screen.GetContent(2, 1)
	assert.Equal(t, a.palette.Style(grid.Obstacle), st)

	a.HandleEvent(ctx, click(2, 1, tcell.Button2))
	assert.Equal(t, []string{"S..", "...", "..E"}, a.sess.Grid.Lines())
	_, _, st, _ = screen.GetContent(2, 1)
	assert.Equal(t, a.palette.Style(grid.Empty), st)

	// Outside the board and button-less moves are ignored.
	a.HandleEvent(ctx, click(40, 20, tcell.Button1))
	a.HandleEvent(ctx, click(2, 1, tcell.ButtonNone))
	assert.Equal(t, []string{"S..", "...", "..E"}, a.sess.Grid.Lines())
}

func TestApp_SearchAndClear(t *testing.T) {
	a, screen := newTestApp(t, 3)
	ctx := context.Background()

	a.HandleEvent(ctx, key(' ')) // not ready: nothing happens
	assert.False(t, a.sess.Done)

	a.HandleEvent(ctx, click(0, 0, tcell.Button1))
	a.HandleEvent(ctx, click(4, 2, tcell.Button1))
	a.HandleEvent(ctx, key(' '))

	assert.True(t, a.sess.Done)
	assert.Equal(t, []string{"Sxx", "*xx", "**E"}, a.sess.Grid.Lines())
	assert.Contains(t, a.Status(), "path found: cost 4")
	_, _, st, _ := screen.GetContent(0, 2)
	assert.Equal(t, a.palette.Style(grid.Path), st)

	a.HandleEvent(ctx, key('c'))
	assert.False(t, a.sess.Done)
	assert.Equal(t, 9, a.sess.Grid.Count(grid.Empty))
	assert.Equal(t, helpLine, a.Status())
}

func TestApp_QuitCancelsSearch(t *testing.T) {
	a, _ := newTestApp(t, 8)
	ctx := context.Background()
	a.HandleEvent(ctx, click(0, 0, tcell.Button1))
	a.HandleEvent(ctx, click(14, 7, tcell.Button1))

	a.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	a.HandleEvent(ctx, key(' '))

	assert.True(t, a.Quit())
	assert.True(t, a.sess.Done)
	assert.Contains(t, a.Status(), "cancelled")
	assert.Zero(t, a.sess.Grid.Count(grid.Path))
}

func TestApp_QuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		a, _ := newTestApp(t, 2)
		a.HandleEvent(context.Background(), ev)
		assert.True(t, a.Quit(), ev.Name())
	}
	a, _ := newTestApp(t, 2)
	a.HandleEvent(context.Background(), key('x'))
	assert.False(t, a.Quit())
}

func TestApp_RunStopsOnPostedQuit(t *testing.T) {
	a, screen := newTestApp(t, 2)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, screen.PostEvent(key('q')))
	require.NoError(t, a.Run(ctx))
	assert.True(t, a.Quit())
}

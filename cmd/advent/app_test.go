package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stampScene writes its glyph at the origin every frame
type stampScene struct {
	glyph   rune
	enters  int
	exits   int
	updates int
	lastDt  float64
}

func (s *stampScene) Name() string { return "stamp" }

func (s *stampScene) Enter(render.Surface) { s.enters++ }

func (s *stampScene) Update(surf render.Surface, _ input.State, dt float64) scene.Scene {
	s.updates++
	s.lastDt = dt
	surf.SetCell(0, 0, s.glyph, terminal.RGBWhite)
	return nil
}

func (s *stampScene) Exit(render.Surface, input.State) { s.exits++ }

func newSimApp(t *testing.T, debug bool) (tcell.SimulationScreen, *App, *stampScene) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	first := &stampScene{glyph: 'X'}
	return screen, newApp(screen, first, debug, nil), first
}

func cellAt(t *testing.T, screen tcell.SimulationScreen, x, y int) rune {
	t.Helper()
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	require.NotEmpty(t, c.Runes)
	return c.Runes[0]
}

func TestAppEntersFirstScene(t *testing.T) {
	_, app, first := newSimApp(t, false)
	assert.Equal(t, 1, first.enters)
	assert.Same(t, first, app.host.Active())
}

func TestAppStepDrawsScene(t *testing.T) {
	screen, app, first := newSimApp(t, false)

	quit, err := app.Step(0.1)
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, 1, first.updates)
	assert.Equal(t, 0.1, first.lastDt)
	assert.Equal(t, 'X', cellAt(t, screen, 0, 0))
}

func TestAppQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEsc, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen, app, first := newSimApp(t, false)
			screen.InjectKey(tt.key, tt.r, tcell.ModNone)

			quit, err := app.Step(0.1)
			require.NoError(t, err)
			assert.True(t, quit)
			assert.Zero(t, first.updates, "no frame runs after quit")
		})
	}
}

func TestAppOtherKeysDoNotQuit(t *testing.T) {
	screen, app, _ := newSimApp(t, false)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	quit, err := app.Step(0.1)
	require.NoError(t, err)
	assert.False(t, quit)
}

func TestAppResize(t *testing.T) {
	screen, app, _ := newSimApp(t, false)
	_, err := app.Step(0)
	require.NoError(t, err)

	screen.SetSize(40, 10)
	screen.PostEvent(tcell.NewEventResize(40, 10))

	_, err = app.Step(0.1)
	require.NoError(t, err)
	assert.Equal(t, 40, app.buf.Width())
	assert.Equal(t, 10, app.buf.Height())
}

func TestAppDebugOverlay(t *testing.T) {
	screen, app, _ := newSimApp(t, true)

	_, err := app.Step(0.5)
	require.NoError(t, err)

	cells, w, _ := screen.GetContents()
	var row []rune
	for x := 0; x < w; x++ {
		if r := cells[x].Runes; len(r) > 0 {
			row = append(row, r[0])
		}
	}
	assert.Contains(t, string(row), "fps 2")
	assert.Contains(t, string(row), "scene stamp")
	assert.Contains(t, string(row), "switches 1")
}

func TestAppShutdownExitsScene(t *testing.T) {
	_, app, first := newSimApp(t, false)
	app.Shutdown()
	assert.Equal(t, 1, first.exits)
	assert.Nil(t, app.host.Active())

	app.Shutdown()
	assert.Equal(t, 1, first.exits)
}

func TestAppRunStopsOnCancel(t *testing.T) {
	_, app, first := newSimApp(t, false)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, app.Run(ctx, 10*time.Millisecond))
	assert.Greater(t, first.updates, 1)
	assert.LessOrEqual(t, first.lastDt, maxFrameDelta)
}

func TestAppRunStopsOnQuit(t *testing.T) {
	screen, app, _ := newSimApp(t, false)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background(), 10*time.Millisecond) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop on quit key")
	}
}

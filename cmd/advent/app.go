package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"go.uber.org/zap"
)

// maxFrameDelta caps dt after stalls (suspend, debugger) so effects don't jump
const maxFrameDelta = 0.25

var quitKeys = []input.KeyCode{
	input.Rune('q'),
	input.Special(terminal.KeyEscape),
	input.Special(terminal.KeyCtrlC),
}

// App owns the per-frame pipeline: input, scene update, overlay, present
type App struct {
	screen   tcell.Screen
	source   terminal.Source
	renderer *render.TerminalRenderer
	buf      *render.Buffer
	input    *input.Model
	host     *scene.Host
	debug    bool
	log      *zap.Logger

	frame  uint64
	lastDt float64
}

func newApp(screen tcell.Screen, first scene.Scene, debug bool, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	w, h := screen.Size()
	a := &App{
		screen:   screen,
		source:   terminal.NewTcellSource(screen),
		renderer: render.NewTerminalRenderer(screen),
		buf:      render.NewBuffer(w, h),
		input:    input.NewModel(),
		host:     scene.NewHost(log),
		debug:    debug,
		log:      log,
	}
	a.host.Change(a.buf, a.input, first)
	return a
}

// Step runs one frame; quit is set when the user asked to leave or the screen closed
func (a *App) Step(dt float64) (quit bool, err error) {
	if err := a.input.Refresh(a.source); err != nil {
		if errors.Is(err, terminal.ErrSourceClosed) {
			return true, nil
		}
		return true, fmt.Errorf("read input: %w", err)
	}

	for _, k := range quitKeys {
		if a.input.IsKeyDown(k) {
			a.log.Info("quit requested", zap.Stringer("key", k))
			return true, nil
		}
	}

	if w, h, ok := a.input.Resized(); ok {
		a.buf.Resize(w, h)
		a.renderer.Sync()
		a.log.Debug("resize", zap.Int("width", w), zap.Int("height", h))
	}

	a.frame++
	a.lastDt = dt

	a.buf.Clear()
	a.host.Update(a.buf, a.input, dt)
	if a.debug {
		a.drawOverlay()
	}
	a.renderer.Flush(a.buf)
	return false, nil
}

// drawOverlay prints frame timing, pointer and scene state on the top row
func (a *App) drawOverlay() {
	fps := 0.0
	if a.lastDt > 0 {
		fps = 1 / a.lastDt
	}
	mx, my := a.input.MousePosition()

	var keys []string
	for _, k := range a.input.Keys() {
		keys = append(keys, k.Code.String()+":"+k.State.String())
	}

	line := fmt.Sprintf("fps %.0f dt %.3f mouse %d,%d scene %s switches %d keys [%s]",
		fps, a.lastDt, mx, my, scene.Name(a.host.Active()), a.host.Switches(), strings.Join(keys, " "))
	render.DrawText(a.buf, 0, 0, line, terminal.RGBYellow)
}

// Run drives Step from a ticker until quit, context cancellation or error
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	if quit, err := a.Step(0); quit || err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			a.log.Info("context done", zap.Error(ctx.Err()))
			return nil
		case now := <-ticker.C:
			dt := min(now.Sub(last).Seconds(), maxFrameDelta)
			last = now
			quit, err := a.Step(max(dt, 0))
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// Shutdown exits the active scene
func (a *App) Shutdown() {
	a.host.Shutdown(a.buf, a.input)
}

// Package scenes holds the advent calendar screens
package scenes

import (
	"github.com/lixenwraith/advent/content"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"github.com/lixenwraith/advent/vmath"
	"go.uber.org/zap"
)

// Sounder plays feedback sounds; nil disables sound
type Sounder interface {
	PlayBuzz()
}

// Env carries the collaborators every scene needs
type Env struct {
	Bank       *content.Bank
	Rand       *vmath.FastRand
	Transition scene.TransitionOptions
	Sound      Sounder
	Log        *zap.Logger
}

// NewEnv fills missing collaborators with working defaults
func NewEnv(bank *content.Bank, rng *vmath.FastRand, log *zap.Logger) *Env {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Env{Bank: bank, Rand: rng, Log: log}
}

// transitionTo wraps next in the configured wipe
func (e *Env) transitionTo(next scene.Scene) scene.Scene {
	return scene.NewTransition(next, e.Transition)
}

func (e *Env) buzz() {
	if e.Sound != nil {
		e.Sound.PlayBuzz()
	}
}

// pointer reads the left mouse button as a widget pointer
func pointer(in input.State) render.Pointer {
	x, y := in.MousePosition()
	return render.Pointer{
		X:       x,
		Y:       y,
		Held:    in.IsMouseDown(terminal.MouseBtnLeft),
		Clicked: in.IsMouseUp(terminal.MouseBtnLeft),
	}
}

// Back button text and vertical offset from screen center
const (
	backLabel  = "Tilbake"
	backOffset = 9
)

// backClicked draws the back button and reports a click on it
func backClicked(s render.Surface, p render.Pointer, dy int) bool {
	return render.TextBox(s, backLabel, 0, dy, p) && p.Clicked
}

// ForDay returns the scene behind a calendar door
func ForDay(day int, env *Env) scene.Scene {
	switch day {
	case 2:
		return NewMemory(env)
	case 4:
		return NewCatch(env)
	case 6:
		return NewCards(env)
	}
	if q, ok := env.Bank.Get(day); ok {
		return NewQuiz(q, env)
	}
	return NewPlaceholder(day, env)
}

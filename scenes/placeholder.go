package scenes

import (
	"fmt"

	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
)

// Placeholder stands in for days without content
type Placeholder struct {
	env *Env
	day int
}

func NewPlaceholder(day int, env *Env) *Placeholder {
	return &Placeholder{env: env, day: day}
}

func (p *Placeholder) Name() string { return fmt.Sprintf("placeholder(%d)", p.day) }

func (p *Placeholder) Enter(s render.Surface) {}

func (p *Placeholder) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	render.Label(s, fmt.Sprintf("Luke %d", p.day), 0, -4)
	render.Label(s, "Kommer snart", 0, 0)
	if backClicked(s, pointer(in), backOffset) {
		return p.env.transitionTo(NewTitle(p.env))
	}
	return nil
}

func (p *Placeholder) Exit(s render.Surface, in input.State) {}

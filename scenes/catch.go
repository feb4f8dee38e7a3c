package scenes

import (
	"fmt"

	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"github.com/lixenwraith/advent/vmath"
	"go.uber.org/zap"
)

const (
	catchRound    = 30.0 // Seconds per round
	catchStep     = 0.1  // Seconds per fall step
	catchSpawn    = 0.3  // Spawn probability per step
	catchGameOver = 3.0  // Seconds the score stays up before returning
)

type fallingFlake struct {
	x, y int
}

// Catch is a snowflake catching game played with 'a' and 'd'
type Catch struct {
	env     *Env
	flakes  []fallingFlake
	basketX int
	score   int
	left    float64 // Round time remaining
	step    float64 // Time accumulated toward the next fall step
	over    float64 // Game over display time remaining
	done    bool
}

var _ scene.Scene = (*Catch)(nil)

func NewCatch(env *Env) *Catch {
	return &Catch{env: env}
}

func (c *Catch) Name() string { return "catch" }

func (c *Catch) Enter(s render.Surface) {
	c.flakes = c.flakes[:0]
	c.basketX = s.Width() / 2
	c.score = 0
	c.left = catchRound
	c.step = 0
	c.done = false
}

// Score returns flakes caught this round
func (c *Catch) Score() int { return c.score }

// Remaining returns round seconds left
func (c *Catch) Remaining() float64 { return c.left }

func (c *Catch) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	w, h := s.Width(), s.Height()

	if c.done {
		c.over -= dt
		render.Label(s, fmt.Sprintf("Tiden er ute! Du fanget %d snøfnugg", c.score), 0, 0)
		if c.over <= 0 {
			return c.env.transitionTo(NewTitle(c.env))
		}
		return nil
	}

	c.left -= dt
	if c.left <= 0 {
		c.left = 0
		c.done = true
		c.over = catchGameOver
		c.env.Log.Debug("catch finished", zap.Int("score", c.score))
		return nil
	}

	switch {
	case in.IsKeyDown(input.Rune('a')), in.IsKeyDown(input.Special(terminal.KeyLeft)):
		c.basketX--
	case in.IsKeyDown(input.Rune('d')), in.IsKeyDown(input.Special(terminal.KeyRight)):
		c.basketX++
	}
	c.basketX = int(vmath.Clamp(float64(c.basketX), 1, float64(max(w-2, 1))))

	c.step += dt
	for c.step >= catchStep {
		c.step -= catchStep
		c.fall(w, h)
	}

	for _, f := range c.flakes {
		s.SetCell(f.x, f.y, '*', terminal.RGBSnow)
	}
	render.DrawText(s, c.basketX-1, h-1, "[=]", terminal.RGBGreen)
	render.DrawTextCentered(s, 2, fmt.Sprintf("Poeng: %d  Tid igjen: %.1fs", c.score, c.left), terminal.RGBWhite)
	render.DrawTextCentered(s, 4, "Flytt med 'A' og 'D'", terminal.RGBWhite)
	return nil
}

// fall advances every flake one row, scoring those landing in the basket
func (c *Catch) fall(w, h int) {
	if w > 0 && c.env.Rand.Chance(catchSpawn) {
		c.flakes = append(c.flakes, fallingFlake{x: c.env.Rand.Intn(w)})
	}

	kept := c.flakes[:0]
	for _, f := range c.flakes {
		f.y++
		switch {
		case f.y >= h:
		case f.y == h-1 && f.x >= c.basketX-1 && f.x <= c.basketX+1:
			c.score++
		default:
			kept = append(kept, f)
		}
	}
	c.flakes = kept
}

func (c *Catch) Exit(s render.Surface, in input.State) {
	c.flakes = nil
}

package scenes

import (
	"fmt"
	"math"

	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"github.com/lixenwraith/advent/vmath"
	"go.uber.org/zap"
)

const (
	cardCount  = 52
	cardWidth  = 7
	cardHeight = 4
	cardSpeed  = 100.0 // Cells per second toward the pile

	cardsIntroOffset = -8
	cardsTaskOffset  = -4
)

// Braille blank keeps the card face opaque since DrawASCII skips spaces
const cardArt = "┌─────┐\n" +
	"│⠀⠀⠀⠀⠀│\n" +
	"│⠀⠀⠀⠀⠀│\n" +
	"└─────┘"

type card struct {
	x, y float64
}

// contains reports whether cell (px, py) is on the card
func (c card) contains(px, py int) bool {
	x, y := int(c.x), int(c.y)
	return px >= x && px < x+cardWidth && py >= y && py < y+cardHeight
}

// Cards is the clean-up game: press on scattered cards to gather them in a pile
type Cards struct {
	env       *Env
	scattered []card
	picked    []card
	elapsed   float64
}

var _ scene.Scene = (*Cards)(nil)

func NewCards(env *Env) *Cards {
	return &Cards{env: env}
}

func (c *Cards) Name() string { return "cards" }

// Enter scatters a full deck over the screen
func (c *Cards) Enter(s render.Surface) {
	w, h := float64(s.Width()), float64(s.Height())
	c.scattered = c.scattered[:0]
	c.picked = c.picked[:0]
	c.elapsed = 0
	for i := 0; i < cardCount; i++ {
		c.scattered = append(c.scattered, card{
			x: c.env.Rand.Range(cardWidth, math.Max(w-cardWidth, cardWidth)),
			y: c.env.Rand.Range(cardHeight, math.Max(h-cardHeight, cardHeight)),
		})
	}
}

// Elapsed returns seconds spent clearing the floor
func (c *Cards) Elapsed() float64 { return c.elapsed }

// Done reports whether every card has been picked up
func (c *Cards) Done() bool { return len(c.scattered) == 0 }

// pile returns the top-left corner picked cards glide to
func pile(s render.Surface) (x, y float64) {
	return float64(s.Width())/2 - cardWidth/2.0, float64(s.Height()) / 2
}

// glide moves every picked card toward (tx, ty) by at most cardSpeed*dt
func (c *Cards) glide(tx, ty, dt float64) {
	for i := range c.picked {
		p := &c.picked[i]
		dist := math.Hypot(tx-p.x, ty-p.y)
		if dist == 0 {
			continue
		}
		t := vmath.Approach(0, dist, cardSpeed*dt) / dist
		p.x = vmath.Lerp(p.x, tx, t)
		p.y = vmath.Lerp(p.y, ty, t)
	}
}

func (c *Cards) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	tx, ty := pile(s)
	c.glide(tx, ty, dt)
	for _, p := range c.picked {
		render.DrawASCII(s, cardArt, int(p.x), int(p.y), terminal.RGBGreen)
	}

	mx, my := in.MousePosition()
	held := in.IsMouseDown(terminal.MouseBtnLeft)
	kept := c.scattered[:0]
	for _, k := range c.scattered {
		if !k.contains(mx, my) {
			render.DrawASCII(s, cardArt, int(k.x), int(k.y), terminal.RGBWhite)
			kept = append(kept, k)
			continue
		}
		render.DrawASCII(s, cardArt, int(k.x), int(k.y), terminal.RGBYellow)
		if held {
			c.picked = append(c.picked, k)
		} else {
			kept = append(kept, k)
		}
	}
	c.scattered = kept

	if !c.Done() {
		c.elapsed += dt
		render.Label(s, "Din nevø på 7 har vært på besøk.", 0, cardsIntroOffset)
		render.Label(s, "Rydd opp alle kortene han kastet ut på gulvet.", 0, cardsTaskOffset)
		return nil
	}

	render.Label(s, fmt.Sprintf("Bra jobba! Du klarte det på %.2f sekunder.", c.elapsed), 0, cardsIntroOffset)
	if backClicked(s, pointer(in), cardsTaskOffset) {
		c.env.Log.Debug("cards cleared", zap.Float64("seconds", c.elapsed))
		return c.env.transitionTo(NewTitle(c.env))
	}
	return nil
}

func (c *Cards) Exit(s render.Surface, in input.State) {
	c.scattered = nil
	c.picked = nil
}

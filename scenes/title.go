package scenes

import (
	"math"

	"github.com/lixenwraith/advent/content"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"go.uber.org/zap"
)

// One flake per this many cells
const snowDensity = 40

type snowflake struct {
	x, y  float64
	speed float64 // Rows per second
	drift float64 // Phase offset of the sideways sway
}

// Title is the calendar screen with falling snow
type Title struct {
	env           *Env
	flakes        []snowflake
	phase         float64
	width, height int
}

var _ scene.Scene = (*Title)(nil)

func NewTitle(env *Env) *Title {
	return &Title{env: env}
}

func (t *Title) Name() string { return "title" }

func (t *Title) Enter(s render.Surface) {
	t.spawnSnow(s.Width(), s.Height())
}

func (t *Title) spawnSnow(w, h int) {
	t.width, t.height = w, h
	n := w * h / snowDensity
	t.flakes = t.flakes[:0]
	for i := 0; i < n; i++ {
		t.flakes = append(t.flakes, snowflake{
			x:     t.env.Rand.Range(0, float64(w)),
			y:     t.env.Rand.Range(0, float64(h)),
			speed: t.env.Rand.Range(2, 6),
			drift: t.env.Rand.Range(0, 2*math.Pi),
		})
	}
}

func (t *Title) updateSnow(dt float64) {
	for i := range t.flakes {
		f := &t.flakes[i]
		f.y += f.speed * dt
		f.x += math.Sin(t.phase+f.drift) * dt
		if f.y >= float64(t.height) {
			f.y = 0
			f.x = t.env.Rand.Range(0, float64(t.width))
		}
		if f.x < 0 {
			f.x += float64(t.width)
		} else if f.x >= float64(t.width) {
			f.x -= float64(t.width)
		}
	}
}

func (t *Title) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	w, h := s.Width(), s.Height()
	if w != t.width || h != t.height {
		t.spawnSnow(w, h)
	}

	t.phase += dt
	t.updateSnow(dt)

	_, santaH := render.ArtSize(content.Santa)
	render.DrawASCII(s, content.Santa, 2, h-santaH-1, terminal.RGBRed)
	for _, f := range t.flakes {
		s.SetCell(int(f.x), int(f.y), '*', terminal.RGBSnow)
	}
	bannerW, _ := render.ArtSize(content.Banner)
	render.DrawASCII(s, content.Banner, (w-bannerW)/2, 0, terminal.RGBGold)
	render.DrawGround(s, terminal.RGBSnow)

	if day := render.Calendar(s, pointer(in)); day != 0 {
		t.env.Log.Debug("door opened", zap.Int("day", day))
		return t.env.transitionTo(ForDay(day, t.env))
	}
	return nil
}

func (t *Title) Exit(s render.Surface, in input.State) {
	t.flakes = nil
}

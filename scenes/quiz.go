package scenes

import (
	"fmt"
	"math"

	"github.com/lixenwraith/advent/content"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"github.com/lixenwraith/advent/terminal"
	"go.uber.org/zap"
)

// How long the wrong-answer notice stays up, in seconds
const wrongNotice = 1.5

// Sleeping Z's drifting above the cat
const (
	zCount     = 3
	zAmplitude = 4.0
)

type zParticle struct {
	x, y float64
}

// Quiz asks one question; the right answer returns to the calendar
type Quiz struct {
	env      *Env
	question content.Question
	answers  []string
	correct  int

	phase    float64
	wrong    float64 // Remaining notice time
	attempts int
	zs       []zParticle
}

var _ scene.Scene = (*Quiz)(nil)

func NewQuiz(q content.Question, env *Env) *Quiz {
	return &Quiz{env: env, question: q}
}

func (q *Quiz) Name() string { return fmt.Sprintf("quiz(%d)", q.question.Day) }

// Enter shuffles the answers
func (q *Quiz) Enter(s render.Surface) {
	q.answers, q.correct = q.question.Answers(q.env.Rand)
	q.phase = 0
	q.wrong = 0
	q.zs = q.zs[:0]
	for i := 0; i < zCount; i++ {
		q.zs = append(q.zs, zParticle{x: float64(i) * 2, y: float64(i) * 2})
	}
}

// drawScenery draws the present, the sleeping cat with its Z's, and the day's own art
func (q *Quiz) drawScenery(s render.Surface, dt float64) {
	w, h := s.Width(), s.Height()

	_, ph := render.ArtSize(content.Present)
	bob := int(math.Round(math.Sin(q.phase * 2)))
	render.DrawASCII(s, content.Present, 4, h-ph-1+bob, terminal.RGBRed)

	_, ch := render.ArtSize(content.Cat)
	catX, catY := w-30, h-ch-1
	render.DrawASCII(s, content.Cat, catX, catY, terminal.RGBWhite)
	for i := range q.zs {
		z := &q.zs[i]
		z.x += math.Sin(q.phase*2+z.y) * zAmplitude * dt
		s.SetCell(catX+9+int(z.x), catY-6+int(z.y), 'Z', terminal.RGBWhite)
	}

	switch q.question.Art {
	case "", "present", "cat":
	default:
		if art := content.Art(q.question.Art); art != "" {
			aw, _ := render.ArtSize(art)
			render.DrawASCII(s, art, w-aw-2, 1, terminal.RGBGreen)
		}
	}
}

func (q *Quiz) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	q.phase += dt
	q.wrong = math.Max(q.wrong-dt, 0)

	q.drawScenery(s, dt)

	p := pointer(in)
	switch render.Question(s, p, q.question.Prompt, q.answers, q.correct) {
	case render.AnswerCorrect:
		q.attempts++
		q.env.Log.Debug("quiz solved", zap.Int("day", q.question.Day), zap.Int("attempts", q.attempts))
		return q.env.transitionTo(NewTitle(q.env))
	case render.AnswerWrong:
		q.attempts++
		q.wrong = wrongNotice
		q.env.buzz()
	}

	if q.wrong > 0 {
		render.Label(s, "Feil! Prøv igjen", 0, 5)
	}

	if backClicked(s, p, backOffset) {
		return q.env.transitionTo(NewTitle(q.env))
	}
	return nil
}

// Attempts returns the number of answers given
func (q *Quiz) Attempts() int { return q.attempts }

func (q *Quiz) Exit(s render.Surface, in input.State) {}

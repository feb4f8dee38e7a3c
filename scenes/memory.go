package scenes

import (
	"fmt"

	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/scene"
	"go.uber.org/zap"
)

// Board layout, offsets from screen center
const (
	memoryCols    = 4
	memoryRows    = 4
	memoryStepX   = 9
	memoryStepY   = 4
	memoryOffsetX = -(memoryCols - 1) * memoryStepX / 2
	memoryOffsetY = -(memoryRows-1)*memoryStepY/2 - 1

	memoryBackOffset = memoryOffsetY + memoryRows*memoryStepY + 1

	// Seconds a mismatched pair stays face up
	memoryPeek = 0.8
)

var memorySymbols = []rune{'α', 'β', 'γ', 'δ', 'ε', 'ζ', 'η', 'θ'}

type memoryCard struct {
	symbol  rune
	matched bool
}

// Memory is a pairs game; attempts are counted per revealed pair
type Memory struct {
	env      *Env
	cards    []memoryCard
	selected []int
	peek     float64
	attempts int
}

var _ scene.Scene = (*Memory)(nil)

func NewMemory(env *Env) *Memory {
	return &Memory{env: env}
}

func (m *Memory) Name() string { return "memory" }

// Enter deals a shuffled board
func (m *Memory) Enter(s render.Surface) {
	m.cards = m.cards[:0]
	for _, r := range memorySymbols {
		m.cards = append(m.cards, memoryCard{symbol: r}, memoryCard{symbol: r})
	}
	for i := len(m.cards) - 1; i > 0; i-- {
		j := m.env.Rand.Intn(i + 1)
		m.cards[i], m.cards[j] = m.cards[j], m.cards[i]
	}
	m.selected = m.selected[:0]
	m.attempts = 0
	m.peek = 0
}

// cardOffset returns the box offset of card i from screen center
func cardOffset(i int) (dx, dy int) {
	return memoryOffsetX + (i%memoryCols)*memoryStepX, memoryOffsetY + (i/memoryCols)*memoryStepY
}

// Solved reports whether every pair is found
func (m *Memory) Solved() bool {
	if len(m.cards) == 0 {
		return false
	}
	for _, c := range m.cards {
		if !c.matched {
			return false
		}
	}
	return true
}

// Attempts returns the number of pairs turned
func (m *Memory) Attempts() int { return m.attempts }

func (m *Memory) faceUp(i int) bool {
	for _, j := range m.selected {
		if i == j {
			return true
		}
	}
	return false
}

func (m *Memory) Update(s render.Surface, in input.State, dt float64) scene.Scene {
	if m.peek > 0 {
		m.peek -= dt
		if m.peek <= 0 {
			m.selected = m.selected[:0]
		}
	}

	p := pointer(in)
	render.Label(s, fmt.Sprintf("Forsøk: %d", m.attempts), 0, memoryOffsetY-3)

	clicked := -1
	for i, c := range m.cards {
		if c.matched {
			continue
		}
		face := "  "
		if m.faceUp(i) {
			face = string(c.symbol) + " "
		}
		dx, dy := cardOffset(i)
		if render.TextBox(s, face, dx, dy, p) && p.Clicked {
			clicked = i
		}
	}

	// Clicks are ignored while a mismatched pair is showing
	if clicked >= 0 && m.peek <= 0 && !m.faceUp(clicked) {
		m.selected = append(m.selected, clicked)
		if len(m.selected) == 2 {
			m.resolve()
		}
	}

	if m.Solved() {
		render.Label(s, "Gratulerer!", 0, 0)
	}

	if backClicked(s, p, memoryBackOffset) {
		return m.env.transitionTo(NewTitle(m.env))
	}
	return nil
}

func (m *Memory) resolve() {
	m.attempts++
	a, b := m.selected[0], m.selected[1]
	if m.cards[a].symbol == m.cards[b].symbol {
		m.cards[a].matched = true
		m.cards[b].matched = true
		m.selected = m.selected[:0]
		if m.Solved() {
			m.env.Log.Debug("memory solved", zap.Int("attempts", m.attempts))
		}
		return
	}
	m.peek = memoryPeek
}

func (m *Memory) Exit(s render.Surface, in input.State) {}

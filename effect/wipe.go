package effect

import (
	"math"

	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/terminal"
)

// Phase is the running half of a wipe
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseIn         // Concealing: mask grows from the center outward
	PhaseOut        // Revealing: scene grows from the center outward
)

// String returns the phase name
func (p Phase) String() string {
	switch p {
	case PhaseIn:
		return "in"
	case PhaseOut:
		return "out"
	default:
		return "idle"
	}
}

// MaxDistance is the normalized distance of the (0, 0) corner from the screen center
const MaxDistance = math.Sqrt2

// overshoot is the timer value forced on the last frame of a phase, past every cell
const overshoot = MaxDistance + 1e-6

// durationEpsilon absorbs float drift in accumulated frame deltas
const durationEpsilon = 1e-9

// Default mask appearance
const DefaultGlyph = 'O'

var DefaultColor = terminal.RGBWhite

// Wipe is a radial mask over the screen
// Each cell is revealed (scene visible) or concealed (mask glyph drawn on top)
type Wipe struct {
	width, height int
	distance      []float64 // Normalized distance from center per cell, row-major
	revealed      []bool

	phase    Phase
	timer    float64 // Distance frontier
	elapsed  float64 // Seconds in current phase
	duration float64 // Seconds per phase
	rate     float64 // Frontier advance per second

	Glyph rune
	Color terminal.RGB
}

// NewWipe creates an idle wipe where each phase spans phaseDuration seconds
// Non-positive durations complete a phase on its first update
func NewWipe(phaseDuration float64) *Wipe {
	w := &Wipe{
		Glyph: DefaultGlyph,
		Color: DefaultColor,
	}
	w.SetDuration(phaseDuration)
	return w
}

// SetDuration changes the per-phase duration for the next Start
func (w *Wipe) SetDuration(phaseDuration float64) {
	if !(phaseDuration > 0) || math.IsInf(phaseDuration, 0) {
		w.duration = 0
		w.rate = math.Inf(1)
		return
	}
	w.duration = phaseDuration
	w.rate = MaxDistance / phaseDuration
}

// Resize rebuilds the grid for a new screen size
// A running phase restarts from its initial state since the old frontier is meaningless
func (w *Wipe) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	w.width, w.height = width, height

	size := width * height
	if cap(w.distance) < size {
		w.distance = make([]float64, size)
		w.revealed = make([]bool, size)
	} else {
		w.distance = w.distance[:size]
		w.revealed = w.revealed[:size]
	}

	cx := float64(width) / 2
	cy := float64(height) / 2
	for y := 0; y < height; y++ {
		dy := (float64(y) - cy) / cy
		for x := 0; x < width; x++ {
			dx := (float64(x) - cx) / cx
			w.distance[y*width+x] = math.Sqrt(dx*dx + dy*dy)
		}
	}

	if w.phase != PhaseIdle {
		w.Start(w.phase)
	} else {
		fillBool(w.revealed, true)
	}
}

// Size returns the grid dimensions
func (w *Wipe) Size() (width, height int) {
	return w.width, w.height
}

// Start arms a phase: timer reset, every cell set to the phase's initial value
func (w *Wipe) Start(p Phase) {
	w.phase = p
	w.timer = 0
	w.elapsed = 0
	switch p {
	case PhaseIn:
		fillBool(w.revealed, true)
	case PhaseOut:
		fillBool(w.revealed, false)
	default:
		fillBool(w.revealed, true)
	}
}

// Phase returns the running phase, PhaseIdle when none
func (w *Wipe) Phase() Phase { return w.phase }

// Running reports whether a phase is in progress
func (w *Wipe) Running() bool { return w.phase != PhaseIdle }

// Timer returns the current distance frontier
func (w *Wipe) Timer() float64 { return w.timer }

// Update advances the frontier by dt seconds
// Returns true when the running phase converged and the wipe went idle
// Idle wipes report true
func (w *Wipe) Update(dt float64) bool {
	if w.phase == PhaseIdle {
		return true
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		dt = 0
	}

	w.elapsed += dt
	w.timer = w.elapsed * w.rate
	if w.elapsed >= w.duration-durationEpsilon {
		w.timer = overshoot
	}

	target := w.phase == PhaseOut
	converged := true
	for i, d := range w.distance {
		var r bool
		if w.phase == PhaseIn {
			r = d > w.timer
		} else {
			r = d < w.timer
		}
		w.revealed[i] = r
		if r != target {
			converged = false
		}
	}

	if converged {
		w.phase = PhaseIdle
	}
	return converged
}

// Revealed reports whether the scene is visible at (x, y)
// Out-of-grid cells are reported revealed
func (w *Wipe) Revealed(x, y int) bool {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return true
	}
	return w.revealed[y*w.width+x]
}

// Concealed counts masked cells
func (w *Wipe) Concealed() int {
	n := 0
	for _, r := range w.revealed {
		if !r {
			n++
		}
	}
	return n
}

// Draw paints the mask glyph over every concealed cell
// Draw does not mutate the wipe; repeated calls produce the same output
func (w *Wipe) Draw(s render.Surface) {
	for i, r := range w.revealed {
		if r {
			continue
		}
		s.SetCell(i%w.width, i/w.width, w.Glyph, w.Color)
	}
}

func fillBool(s []bool, v bool) {
	for i := range s {
		s[i] = v
	}
}

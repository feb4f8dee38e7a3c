package scene

import (
	"github.com/lixenwraith/advent/effect"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/terminal"
)

// DefaultPhaseDuration is the length of each wipe phase in seconds
const DefaultPhaseDuration = 1.0

// TransitionOptions configures the wipe between two scenes
// Zero values select the defaults
type TransitionOptions struct {
	PhaseDuration float64
	Glyph         rune
	Color         terminal.RGB
	UseColor      bool // Color is applied only when set, black is a valid mask color

	// Cue is called when each phase starts, e.g. to play a sound
	Cue func(effect.Phase)
}

// Transition hides the outgoing frame behind a radial wipe, then grows the next
// scene in from the center before handing it to the host
type Transition struct {
	next Scene
	wipe *effect.Wipe
	cue  func(effect.Phase)

	snapshot render.Snapshot // Outgoing frame, captured once at Enter
	captured bool

	phase     effect.Phase
	entered   bool // next.Enter has run
	handedOff bool // next returned to the host
}

var _ Scene = (*Transition)(nil)

// NewTransition wraps next; next is not entered until the wipe has hidden the screen
func NewTransition(next Scene, opts TransitionOptions) *Transition {
	duration := opts.PhaseDuration
	if duration == 0 {
		duration = DefaultPhaseDuration
	}
	w := effect.NewWipe(duration)
	if opts.Glyph != 0 {
		w.Glyph = opts.Glyph
	}
	if opts.UseColor {
		w.Color = opts.Color
	}
	return &Transition{
		next: next,
		wipe: w,
		cue:  opts.Cue,
	}
}

// Name reports the wrapped scene for logs
func (t *Transition) Name() string {
	return "transition(" + Name(t.next) + ")"
}

// Next returns the wrapped scene
func (t *Transition) Next() Scene {
	return t.next
}

// Phase returns the running wipe phase
func (t *Transition) Phase() effect.Phase {
	return t.phase
}

// Enter sizes the wipe, starts the in phase and captures the outgoing frame
func (t *Transition) Enter(s render.Surface) {
	if !t.captured {
		t.snapshot = s.Snapshot()
		t.captured = true
	}
	t.wipe.Resize(s.Width(), s.Height())
	t.startPhase(effect.PhaseIn)
}

// Update advances the wipe one frame
// In: the captured frame is redrawn under the growing mask
// Out: the wrapped scene draws itself under the shrinking mask
func (t *Transition) Update(s render.Surface, in input.State, dt float64) Scene {
	if w, h := t.wipe.Size(); w != s.Width() || h != s.Height() {
		t.wipe.Resize(s.Width(), s.Height())
	}

	switch t.phase {
	case effect.PhaseIn:
		done := t.wipe.Update(dt)
		t.snapshot.DrawTo(s)
		if done {
			t.startPhase(effect.PhaseOut)
			t.enterNext(s)
		}
		t.wipe.Draw(s)
		return nil

	case effect.PhaseOut:
		done := t.wipe.Update(dt)
		var requested Scene
		if t.next != nil {
			requested = t.next.Update(s, in, dt)
		}
		t.wipe.Draw(s)

		if requested != nil {
			// Wrapped scene switched away mid-reveal; it is exited in our Exit
			t.phase = effect.PhaseIdle
			return requested
		}
		if done {
			t.phase = effect.PhaseIdle
			if t.next == nil {
				return vacate
			}
			t.handedOff = true
			return resume(t.next)
		}
		return nil
	}
	return nil
}

// Exit exits the wrapped scene if it was entered and never handed to the host
func (t *Transition) Exit(s render.Surface, in input.State) {
	if t.entered && !t.handedOff && t.next != nil {
		t.next.Exit(s, in)
		t.entered = false
	}
}

func (t *Transition) startPhase(p effect.Phase) {
	t.phase = p
	t.wipe.Start(p)
	if t.cue != nil {
		t.cue(p)
	}
}

func (t *Transition) enterNext(s render.Surface) {
	if t.entered || t.next == nil {
		return
	}
	t.next.Enter(s)
	t.entered = true
}

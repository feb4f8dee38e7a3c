package scene

import (
	"fmt"
	"testing"

	"github.com/lixenwraith/advent/effect"
	"github.com/lixenwraith/advent/input"
	"github.com/lixenwraith/advent/render"
	"github.com/lixenwraith/advent/terminal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects lifecycle calls across scenes in order
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) index(call string) int {
	for i, c := range r.calls {
		if c == call {
			return i
		}
	}
	return -1
}

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// fakeScene fills the surface with its glyph and switches when next is set
type fakeScene struct {
	name  string
	glyph rune
	rec   *recorder
	next  Scene

	enters, updates, exits int
}

func newFake(rec *recorder, name string, glyph rune) *fakeScene {
	return &fakeScene{name: name, glyph: glyph, rec: rec}
}

func (f *fakeScene) Name() string { return f.name }

func (f *fakeScene) Enter(s render.Surface) {
	f.enters++
	f.rec.add("%s.enter", f.name)
}

func (f *fakeScene) Update(s render.Surface, in input.State, dt float64) Scene {
	f.updates++
	f.rec.add("%s.update", f.name)
	if f.glyph != 0 {
		for y := 0; y < s.Height(); y++ {
			for x := 0; x < s.Width(); x++ {
				s.SetCell(x, y, f.glyph, terminal.RGBGreen)
			}
		}
	}
	next := f.next
	f.next = nil
	return next
}

func (f *fakeScene) Exit(s render.Surface, in input.State) {
	f.exits++
	f.rec.add("%s.exit", f.name)
}

// frame runs one driver iteration: clear, then update
func frame(h *Host, buf *render.Buffer, in input.State, dt float64) {
	buf.Clear()
	h.Update(buf, in, dt)
}

// TestHostEmptyUpdateIsNoop verifies an empty host ignores updates and shutdown
func TestHostEmptyUpdateIsNoop(t *testing.T) {
	h := NewHost(nil)
	buf := render.NewBuffer(10, 5)

	assert.NotPanics(t, func() { h.Update(buf, input.NewModel(), 0.1) })
	assert.Nil(t, h.Active())
	assert.Zero(t, h.Switches())

	assert.NotPanics(t, func() { h.Shutdown(buf, input.NewModel()) })
}

// TestHostChangeExitsBeforeEnter verifies the outgoing scene exits before the incoming one enters
func TestHostChangeExitsBeforeEnter(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(10, 5)
	in := input.NewModel()

	a := newFake(rec, "a", 'a')
	b := newFake(rec, "b", 'b')
	c := newFake(rec, "c", 'c')

	h.Change(buf, in, a)
	a.next = b
	h.Update(buf, in, 0.1)
	b.next = c
	h.Update(buf, in, 0.1)
	h.Update(buf, in, 0.1)

	assert.Equal(t, []string{
		"a.enter", "a.update", "a.exit",
		"b.enter", "b.update", "b.exit",
		"c.enter", "c.update",
	}, rec.calls)
	assert.Same(t, c, h.Active())
	assert.Equal(t, 3, h.Switches())
}

// TestHostChangeToNilLeavesEmpty verifies changing to nil exits the active scene and stops updates
func TestHostChangeToNilLeavesEmpty(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(10, 5)
	in := input.NewModel()
	a := newFake(rec, "a", 0)

	h.Change(buf, in, a)
	h.Change(buf, in, nil)
	assert.Nil(t, h.Active())
	assert.Equal(t, 1, a.exits)

	h.Update(buf, in, 0.1)
	assert.Zero(t, a.updates)
}

// TestHostShutdownExitsActive verifies shutdown exits the active scene exactly once
func TestHostShutdownExitsActive(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(10, 5)
	in := input.NewModel()
	a := newFake(rec, "a", 0)

	h.Change(buf, in, a)
	h.Shutdown(buf, in)
	h.Shutdown(buf, in)
	assert.Equal(t, 1, a.exits)
	assert.Nil(t, h.Active())
}

// TestHostResumeSkipsEnter verifies a resumed scene is activated without a second Enter
func TestHostResumeSkipsEnter(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(10, 5)
	in := input.NewModel()
	a := newFake(rec, "a", 0)

	h.Change(buf, in, resume(a))
	assert.Same(t, a, h.Active())
	assert.Zero(t, a.enters)

	assert.Nil(t, resume(nil))
	r := resume(a)
	assert.Same(t, r, resume(r), "resume is idempotent")
}

// TestName verifies display names for empty, named and wrapped scenes
func TestName(t *testing.T) {
	rec := &recorder{}
	assert.Equal(t, "none", Name(nil))
	assert.Equal(t, "a", Name(newFake(rec, "a", 0)))
	assert.Equal(t, "transition(b)", Name(NewTransition(newFake(rec, "b", 0), TransitionOptions{})))
}

// TestTransitionEndToEnd verifies scene A switches to B through a 2s wipe split evenly on an 80x24 screen
func TestTransitionEndToEnd(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(80, 24)
	in := input.NewModel()
	const dt = 0.1

	a := newFake(rec, "a", 'A')
	b := newFake(rec, "b", 'B')
	h.Change(buf, in, a)

	tr := NewTransition(b, TransitionOptions{PhaseDuration: 1})
	a.next = tr
	frame(h, buf, in, dt)
	require.Same(t, tr, h.Active())
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, effect.PhaseIn, tr.Phase())

	// t = 0.9: outgoing frame still visible at the edges, center masked
	for i := 0; i < 9; i++ {
		frame(h, buf, in, dt)
	}
	cell, _ := buf.Get(0, 0)
	assert.Equal(t, 'A', cell.Rune)
	cell, _ = buf.Get(79, 23)
	assert.Equal(t, 'A', cell.Rune)
	cell, _ = buf.Get(40, 12)
	assert.Equal(t, effect.DefaultGlyph, cell.Rune)
	assert.Zero(t, b.enters, "next scene is not entered while the old frame is visible")

	// t = 1.0: in completes, screen fully masked, next scene entered
	frame(h, buf, in, dt)
	assert.Equal(t, effect.PhaseOut, tr.Phase())
	assert.Equal(t, 1, b.enters)
	assert.Zero(t, b.updates)
	for _, p := range [][2]int{{0, 0}, {40, 12}, {79, 23}} {
		cell, _ = buf.Get(p[0], p[1])
		assert.Equal(t, effect.DefaultGlyph, cell.Rune)
	}

	// t = 1.1: next scene grows in from the center
	frame(h, buf, in, dt)
	cell, _ = buf.Get(40, 12)
	assert.Equal(t, 'B', cell.Rune)
	cell, _ = buf.Get(0, 0)
	assert.Equal(t, effect.DefaultGlyph, cell.Rune)
	assert.Equal(t, 1, b.updates)

	// t = 2.0: host owns the next scene
	for i := 0; i < 9; i++ {
		frame(h, buf, in, dt)
	}
	assert.Same(t, b, h.Active())
	assert.Equal(t, 1, a.exits)
	assert.Equal(t, 1, b.enters, "enter runs exactly once across the hand-off")
	assert.Zero(t, b.exits)
	cell, _ = buf.Get(0, 0)
	assert.Equal(t, 'B', cell.Rune)

	// Lifecycle order
	assert.Less(t, rec.index("a.exit"), rec.index("b.enter"))
	assert.Less(t, rec.index("b.enter"), rec.index("b.update"))
	assert.Equal(t, 1, rec.count("a.exit"))

	frame(h, buf, in, dt)
	assert.Equal(t, 11, b.updates)
}

// TestTransitionCapturesSnapshotOnce verifies the outgoing frame is captured at Enter and replayed unchanged
func TestTransitionCapturesSnapshotOnce(t *testing.T) {
	rec := &recorder{}
	buf := render.NewBuffer(20, 10)
	in := input.NewModel()
	b := newFake(rec, "b", 0)

	buf.SetCell(0, 0, 'x', terminal.RGBRed)
	tr := NewTransition(b, TransitionOptions{PhaseDuration: 1})
	tr.Enter(buf)

	// Later drawing does not change what is replayed during the in phase
	buf.SetCell(0, 0, 'y', terminal.RGBRed)
	buf.Clear()
	tr.Update(buf, in, 0.05)
	cell, _ := buf.Get(0, 0)
	assert.Equal(t, 'x', cell.Rune)
}

// TestTransitionWrappedSceneSwitchesDuringOut verifies a switch requested mid-reveal exits the wrapped scene first
func TestTransitionWrappedSceneSwitchesDuringOut(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(40, 20)
	in := input.NewModel()

	a := newFake(rec, "a", 'A')
	b := newFake(rec, "b", 'B')
	c := newFake(rec, "c", 'C')
	h.Change(buf, in, a)
	a.next = NewTransition(b, TransitionOptions{PhaseDuration: 0.5})
	frame(h, buf, in, 0.1)

	for i := 0; i < 5; i++ {
		frame(h, buf, in, 0.1)
	}
	require.Equal(t, 1, b.enters)

	b.next = c
	frame(h, buf, in, 0.1)

	assert.Same(t, c, h.Active())
	assert.Equal(t, 1, b.exits)
	assert.Equal(t, 1, c.enters)
	assert.Less(t, rec.index("b.exit"), rec.index("c.enter"))
}

// TestTransitionShutdownDuringIn verifies a never-entered wrapped scene is not exited
func TestTransitionShutdownDuringIn(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(40, 20)
	in := input.NewModel()
	b := newFake(rec, "b", 0)

	h.Change(buf, in, NewTransition(b, TransitionOptions{}))
	frame(h, buf, in, 0.1)
	h.Shutdown(buf, in)

	assert.Zero(t, b.enters)
	assert.Zero(t, b.exits, "never-entered scene is not exited")
}

// TestTransitionShutdownDuringOut verifies an entered wrapped scene is exited on shutdown
func TestTransitionShutdownDuringOut(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(40, 20)
	in := input.NewModel()
	b := newFake(rec, "b", 0)

	h.Change(buf, in, NewTransition(b, TransitionOptions{PhaseDuration: 0.2}))
	for i := 0; i < 3; i++ {
		frame(h, buf, in, 0.1)
	}
	require.Equal(t, 1, b.enters)
	h.Shutdown(buf, in)
	assert.Equal(t, 1, b.exits)
}

// TestTransitionCueAndOptions verifies glyph, color and phase cues reach the wipe
func TestTransitionCueAndOptions(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(20, 10)
	in := input.NewModel()
	b := newFake(rec, "b", 0)

	var cues []effect.Phase
	h.Change(buf, in, NewTransition(b, TransitionOptions{
		PhaseDuration: 0.3,
		Glyph:         '*',
		Color:         terminal.RGBGold,
		UseColor:      true,
		Cue:           func(p effect.Phase) { cues = append(cues, p) },
	}))
	frame(h, buf, in, 0.1)
	cell, _ := buf.Get(10, 5)
	assert.Equal(t, '*', cell.Rune)
	assert.Equal(t, terminal.RGBGold, cell.Fg)

	for i := 0; i < 10 && h.Active() != Scene(b); i++ {
		frame(h, buf, in, 0.1)
	}
	assert.Same(t, b, h.Active())
	assert.Equal(t, []effect.Phase{effect.PhaseIn, effect.PhaseOut}, cues)
}

// TestTransitionSurvivesResize verifies a resize mid-wipe restarts the phase and still finishes
func TestTransitionSurvivesResize(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(80, 24)
	in := input.NewModel()
	b := newFake(rec, "b", 'B')

	h.Change(buf, in, NewTransition(b, TransitionOptions{PhaseDuration: 0.5}))
	frame(h, buf, in, 0.1)
	frame(h, buf, in, 0.1)

	buf.Resize(100, 30)
	steps := 0
	for h.Active() != Scene(b) {
		frame(h, buf, in, 0.1)
		steps++
		require.Less(t, steps, 20, "transition did not finish after resize")
	}
	cell, _ := buf.Get(99, 29)
	assert.Equal(t, 'B', cell.Rune)
}

// TestTransitionZeroAreaFinishes verifies a zero-size surface completes both phases immediately
func TestTransitionZeroAreaFinishes(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(0, 0)
	in := input.NewModel()
	b := newFake(rec, "b", 0)

	h.Change(buf, in, NewTransition(b, TransitionOptions{}))
	frame(h, buf, in, 0.016)
	frame(h, buf, in, 0.016)
	assert.Same(t, b, h.Active())
	assert.Equal(t, 1, b.enters)
}

// TestTransitionWithoutNextVacatesHost verifies a transition with no successor empties the host once it finishes
func TestTransitionWithoutNextVacatesHost(t *testing.T) {
	rec := &recorder{}
	h := NewHost(nil)
	buf := render.NewBuffer(80, 24)
	in := input.NewModel()
	a := newFake(rec, "a", 'A')

	h.Change(buf, in, a)
	a.next = NewTransition(nil, TransitionOptions{PhaseDuration: 1})
	frame(h, buf, in, 0.05)
	require.IsType(t, &Transition{}, h.Active())

	for i := 0; i < 100 && h.Active() != nil; i++ {
		frame(h, buf, in, 0.05)
	}
	assert.Nil(t, h.Active())
	assert.Equal(t, 1, a.exits)

	frame(h, buf, in, 0.05)
	assert.Nil(t, h.Active())
}

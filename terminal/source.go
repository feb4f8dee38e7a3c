package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrSourceClosed is returned once the underlying screen has been finalized
	ErrSourceClosed = errors.New("terminal: event source closed")
	// ErrSourceFailed wraps read errors reported by the terminal
	ErrSourceFailed = errors.New("terminal: event source failed")
)

// Source is a non-blocking raw event source
type Source interface {
	// Poll returns the next pending event, or ok=false when nothing is pending
	Poll() (ev Event, ok bool, err error)
}

// wheelMask strips impulse-only wheel bits from held button state
const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

// buttonMap lists tcell buttons tracked for press/release synthesis
var buttonMap = [...]struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.ButtonPrimary, MouseBtnLeft},
	{tcell.ButtonMiddle, MouseBtnMiddle},
	{tcell.ButtonSecondary, MouseBtnRight},
}

// TcellSource adapts tcell.Screen to Source
// tcell reports mouse state as a button mask per event; transitions between masks are
// expanded into discrete press/release/move events
type TcellSource struct {
	screen  tcell.Screen
	buttons tcell.ButtonMask
	mouseX  int
	mouseY  int
	pending []Event
}

// NewTcellSource wraps an initialized tcell screen
func NewTcellSource(screen tcell.Screen) *TcellSource {
	return &TcellSource{
		screen:  screen,
		mouseX:  -1,
		mouseY:  -1,
		pending: make([]Event, 0, 8),
	}
}

// Poll implements Source without blocking
func (s *TcellSource) Poll() (Event, bool, error) {
	for len(s.pending) == 0 {
		if !s.screen.HasPendingEvent() {
			return Event{}, false, nil
		}
		raw := s.screen.PollEvent()
		if raw == nil {
			return Event{Type: EventClosed}, false, ErrSourceClosed
		}
		if err := s.translate(raw); err != nil {
			return Event{Type: EventError, Err: err}, false, err
		}
	}

	ev := s.pending[0]
	s.pending = s.pending[1:]
	return ev, true, nil
}

// translate queues zero or more events for a raw tcell event
func (s *TcellSource) translate(raw tcell.Event) error {
	switch ev := raw.(type) {
	case *tcell.EventKey:
		key, ok := fromTcellKey[ev.Key()]
		if !ok {
			return nil
		}
		out := Event{
			Type:      EventKey,
			Key:       key,
			Modifiers: modifiersFromTcell(ev.Modifiers()),
		}
		if key == KeyRune {
			out.Rune = ev.Rune()
		}
		s.pending = append(s.pending, out)

	case *tcell.EventMouse:
		s.translateMouse(ev)

	case *tcell.EventResize:
		w, h := ev.Size()
		s.pending = append(s.pending, Event{Type: EventResize, Width: w, Height: h})

	case *tcell.EventError:
		return fmt.Errorf("%w: %s", ErrSourceFailed, ev.Error())
	}
	// Focus, paste and interrupt events are not part of the input model
	return nil
}

func (s *TcellSource) translateMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()
	held := buttons &^ wheelMask

	if x != s.mouseX || y != s.mouseY {
		action := MouseActionMove
		btn := MouseBtnNone
		if s.buttons != tcell.ButtonNone {
			action = MouseActionDrag
			btn = heldButton(s.buttons)
		}
		s.mouseX, s.mouseY = x, y
		s.pending = append(s.pending, Event{
			Type:        EventMouse,
			MouseX:      x,
			MouseY:      y,
			MouseBtn:    btn,
			MouseAction: action,
		})
	}

	for _, m := range buttonMap {
		was := s.buttons&m.mask != 0
		now := held&m.mask != 0
		switch {
		case now && !was:
			s.pending = append(s.pending, mouseEvent(x, y, m.btn, MouseActionPress))
		case !now && was:
			s.pending = append(s.pending, mouseEvent(x, y, m.btn, MouseActionRelease))
		}
	}

	// Wheel is an impulse: press only, never held
	if buttons&tcell.WheelUp != 0 {
		s.pending = append(s.pending, mouseEvent(x, y, MouseBtnWheelUp, MouseActionPress))
	}
	if buttons&tcell.WheelDown != 0 {
		s.pending = append(s.pending, mouseEvent(x, y, MouseBtnWheelDown, MouseActionPress))
	}

	s.buttons = held
}

func mouseEvent(x, y int, btn MouseButton, action MouseAction) Event {
	return Event{
		Type:        EventMouse,
		MouseX:      x,
		MouseY:      y,
		MouseBtn:    btn,
		MouseAction: action,
	}
}

// heldButton returns the first held button for drag events
func heldButton(mask tcell.ButtonMask) MouseButton {
	for _, m := range buttonMap {
		if mask&m.mask != 0 {
			return m.btn
		}
	}
	return MouseBtnNone
}

package input

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lixenwraith/advent/terminal"
)

// Model folds raw terminal events into per-frame keyboard and mouse state
// Level state (held buttons, position) persists across frames; edge state
// (button released, key down/up, resize) is valid for exactly one Refresh
type Model struct {
	mouseX, mouseY int
	mouseDown      [terminal.MouseButtonCount]bool
	mouseUp        [terminal.MouseButtonCount]bool

	keys map[KeyCode]KeyState // Current frame edges
	prev map[KeyCode]KeyState // Previous frame edges, swapped each refresh

	resized       bool
	width, height int
}

var _ State = (*Model)(nil)

// NewModel creates an empty input model
func NewModel() *Model {
	return &Model{
		keys: make(map[KeyCode]KeyState),
		prev: make(map[KeyCode]KeyState),
	}
}

// Refresh drains every pending event from src without blocking
// Previous-frame edges are cleared before new events are applied
// A source error aborts the drain and is returned; events applied before it stay applied
func (m *Model) Refresh(src terminal.Source) error {
	m.mouseUp = [terminal.MouseButtonCount]bool{}
	m.resized = false
	m.prev, m.keys = m.keys, m.prev
	clear(m.keys)

	var err error
	for {
		ev, ok, perr := src.Poll()
		if perr != nil {
			err = fmt.Errorf("input refresh: %w", perr)
			break
		}
		if !ok {
			break
		}
		m.apply(ev)
	}

	// Terminals report key presses only: a key down last frame and not pressed
	// again this frame is reported released for one frame
	for code, st := range m.prev {
		if st != KeyStateDown {
			continue
		}
		if _, again := m.keys[code]; !again {
			m.keys[code] = KeyStateUp
		}
	}

	return err
}

func (m *Model) apply(ev terminal.Event) {
	switch ev.Type {
	case terminal.EventKey:
		code := KeyCode{Key: ev.Key}
		if ev.Key == terminal.KeyRune {
			code.Rune = ev.Rune
		}
		m.keys[code] = KeyStateDown

	case terminal.EventMouse:
		m.mouseX = max(ev.MouseX, 0)
		m.mouseY = max(ev.MouseY, 0)
		btn := ev.MouseBtn
		if int(btn) >= terminal.MouseButtonCount || btn == terminal.MouseBtnNone {
			return
		}
		switch ev.MouseAction {
		case terminal.MouseActionPress:
			if btn == terminal.MouseBtnWheelUp || btn == terminal.MouseBtnWheelDown {
				// Wheel has no held state, report as a one-frame impulse
				m.mouseUp[btn] = true
				return
			}
			m.mouseDown[btn] = true
		case terminal.MouseActionRelease:
			m.mouseDown[btn] = false
			m.mouseUp[btn] = true
		}

	case terminal.EventResize:
		m.resized = true
		m.width = max(ev.Width, 0)
		m.height = max(ev.Height, 0)
	}
}

// MousePosition returns the last reported pointer cell
func (m *Model) MousePosition() (x, y int) {
	return m.mouseX, m.mouseY
}

// IsMouseDown reports whether btn is currently held
func (m *Model) IsMouseDown(btn terminal.MouseButton) bool {
	if int(btn) >= terminal.MouseButtonCount {
		return false
	}
	return m.mouseDown[btn]
}

// IsMouseUp reports whether btn was released during the last Refresh
func (m *Model) IsMouseUp(btn terminal.MouseButton) bool {
	if int(btn) >= terminal.MouseButtonCount {
		return false
	}
	return m.mouseUp[btn]
}

// Key returns the edge state of code for the current frame
func (m *Model) Key(code KeyCode) KeyState {
	return m.keys[code]
}

// IsKeyDown reports a press of code this frame
func (m *Model) IsKeyDown(code KeyCode) bool {
	return m.keys[code] == KeyStateDown
}

// Resized returns the new terminal size if a resize arrived this frame
func (m *Model) Resized() (width, height int, ok bool) {
	return m.width, m.height, m.resized
}

// Keys lists the current frame's key edges in stable order
func (m *Model) Keys() []KeyEdge {
	out := make([]KeyEdge, 0, len(m.keys))
	for code, st := range m.keys {
		out = append(out, KeyEdge{Code: code, State: st})
	}
	slices.SortFunc(out, func(a, b KeyEdge) int {
		if c := cmp.Compare(a.Code.Key, b.Code.Key); c != 0 {
			return c
		}
		return cmp.Compare(a.Code.Rune, b.Code.Rune)
	})
	return out
}

package input

import (
	"fmt"

	"github.com/lixenwraith/advent/terminal"
)

// KeyState is the per-frame edge state of a key
type KeyState uint8

const (
	KeyStateNone KeyState = iota
	KeyStateDown          // Pressed this frame
	KeyStateUp            // Released this frame (synthesized, see Model.Refresh)
)

// String returns the state name
func (s KeyState) String() string {
	switch s {
	case KeyStateDown:
		return "Down"
	case KeyStateUp:
		return "Up"
	default:
		return "None"
	}
}

// KeyCode identifies a key: a rune for printable keys, a terminal.Key otherwise
type KeyCode struct {
	Key  terminal.Key
	Rune rune
}

// Rune returns the code for a printable key
func Rune(r rune) KeyCode {
	return KeyCode{Key: terminal.KeyRune, Rune: r}
}

// Special returns the code for a non-printable key
func Special(k terminal.Key) KeyCode {
	return KeyCode{Key: k}
}

// String returns the rune or key name
func (c KeyCode) String() string {
	if c.Key == terminal.KeyRune {
		return fmt.Sprintf("%q", c.Rune)
	}
	return c.Key.String()
}

// KeyEdge pairs a key with its edge state for listing
type KeyEdge struct {
	Code  KeyCode
	State KeyState
}

// State is the read-only per-frame view handed to scenes
// Every query is side-effect free and stable until the next Refresh
type State interface {
	MousePosition() (x, y int)
	IsMouseDown(btn terminal.MouseButton) bool
	IsMouseUp(btn terminal.MouseButton) bool
	Key(code KeyCode) KeyState
	IsKeyDown(code KeyCode) bool
	Resized() (width, height int, ok bool)
	Keys() []KeyEdge
}

package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyCtrlC
	KeyCtrlD
	KeyCtrlZ
)

// keyToName maps Key constants to canonical names for the debug overlay
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
	KeyInsert:   "insert",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",

	KeyCtrlC: "ctrl_c",
	KeyCtrlD: "ctrl_d",
	KeyCtrlZ: "ctrl_z",
}

// String returns the canonical key name, "rune" for KeyRune
func (k Key) String() string {
	if k == KeyRune {
		return "rune"
	}
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "none"
}

// fromTcellKey maps tcell special keys; unknown keys map to KeyNone
var fromTcellKey = map[tcell.Key]Key{
	tcell.KeyRune:      KeyRune,
	tcell.KeyEsc:       KeyEscape,
	tcell.KeyEnter:     KeyEnter,
	tcell.KeyTab:       KeyTab,
	tcell.KeyBacktab:   KeyBacktab,
	tcell.KeyBackspace: KeyBackspace,
	tcell.KeyDelete:    KeyDelete,
	tcell.KeyUp:        KeyUp,
	tcell.KeyDown:      KeyDown,
	tcell.KeyLeft:      KeyLeft,
	tcell.KeyRight:     KeyRight,
	tcell.KeyHome:      KeyHome,
	tcell.KeyEnd:       KeyEnd,
	tcell.KeyPgUp:      KeyPageUp,
	tcell.KeyPgDn:      KeyPageDown,
	tcell.KeyInsert:    KeyInsert,
	tcell.KeyF1:        KeyF1,
	tcell.KeyF2:        KeyF2,
	tcell.KeyF3:        KeyF3,
	tcell.KeyF4:        KeyF4,
	tcell.KeyF5:        KeyF5,
	tcell.KeyF6:        KeyF6,
	tcell.KeyF7:        KeyF7,
	tcell.KeyF8:        KeyF8,
	tcell.KeyF9:        KeyF9,
	tcell.KeyF10:       KeyF10,
	tcell.KeyF11:       KeyF11,
	tcell.KeyF12:       KeyF12,
	tcell.KeyCtrlC:     KeyCtrlC,
	tcell.KeyCtrlD:     KeyCtrlD,
	tcell.KeyCtrlZ:     KeyCtrlZ,
}

func modifiersFromTcell(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if m&tcell.ModMeta != 0 {
		mod |= ModMeta
	}
	return mod
}

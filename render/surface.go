package render

import "github.com/lixenwraith/advent/terminal"

// Surface is the drawing target handed to scenes and effects
type Surface interface {
	Width() int
	Height() int

	// SetCell writes a glyph; out-of-bounds coordinates are ignored
	SetCell(x, y int, r rune, fg terminal.RGB)

	// Clear resets every cell to blank
	Clear()

	// Snapshot copies all cells
	Snapshot() Snapshot
}

// Snapshot is an immutable row-major copy of a surface
type Snapshot struct {
	width  int
	height int
	cells  []Cell
}

// Width returns the snapshot width at capture time
func (s Snapshot) Width() int { return s.width }

// Height returns the snapshot height at capture time
func (s Snapshot) Height() int { return s.height }

// Len returns the number of captured cells
func (s Snapshot) Len() int { return len(s.cells) }

// Cell returns the cell at linear index i
func (s Snapshot) Cell(i int) Cell { return s.cells[i] }

// Position maps a linear index back to (x, y)
func (s Snapshot) Position(i int) (x, y int) {
	return i % s.width, i / s.width
}

// DrawTo replays every captured cell onto dst by coordinate
// Cells outside dst (after a shrink) are dropped by dst's bounds check
func (s Snapshot) DrawTo(dst Surface) {
	for i, c := range s.cells {
		x, y := s.Position(i)
		dst.SetCell(x, y, c.Rune, c.Fg)
	}
}

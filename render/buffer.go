package render

import "github.com/lixenwraith/advent/terminal"

// Buffer is a row-major cell grid implementing Surface
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
// Negative dimensions are treated as zero
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Width returns the buffer width
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height
func (b *Buffer) Height() int { return b.height }

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetCell writes a glyph and foreground, keeping the cell background
func (b *Buffer) SetCell(x, y int, r rune, fg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune = r
	c.Fg = fg
}

// Set replaces a whole cell
func (b *Buffer) Set(x, y int, cell Cell) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = cell
}

// Get returns the cell at (x, y)
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Snapshot copies the current contents
func (b *Buffer) Snapshot() Snapshot {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return Snapshot{width: b.width, height: b.height, cells: cells}
}

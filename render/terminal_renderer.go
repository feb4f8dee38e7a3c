package render

import "github.com/gdamore/tcell/v2"

// TerminalRenderer copies a Buffer to a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// Flush writes every buffer cell and presents the frame
func (r *TerminalRenderer) Flush(buf *Buffer) {
	for i, c := range buf.cells {
		x, y := i%buf.width, i/buf.width
		ch := c.Rune
		if ch == 0 {
			ch = ' '
		}
		style := tcell.StyleDefault.Foreground(c.Fg.Tcell()).Background(c.Bg.Tcell())
		r.screen.SetContent(x, y, ch, nil, style)
	}
	r.screen.Show()
}

// Sync forces a full redraw on the next Show, used after resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

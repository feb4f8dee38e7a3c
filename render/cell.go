package render

import "github.com/lixenwraith/advent/terminal"

// Default cell colors
var (
	DefaultFg = terminal.RGBWhite
	DefaultBg = terminal.RGBBlack
)

// Cell is a single glyph with its colors
type Cell struct {
	Rune rune
	Fg   terminal.RGB
	Bg   terminal.RGB
}

// emptyCell is the cleared state of every buffer cell
var emptyCell = Cell{Rune: ' ', Fg: DefaultFg, Bg: DefaultBg}

package render

import (
	"strings"

	"github.com/lixenwraith/advent/terminal"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s starting at (x, y), advancing by display width
func DrawText(s Surface, x, y int, text string, fg terminal.RGB) {
	for _, r := range text {
		s.SetCell(x, y, r, fg)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

// DrawTextCentered writes text horizontally centered on row y
func DrawTextCentered(s Surface, y int, text string, fg terminal.RGB) {
	DrawText(s, (s.Width()-runewidth.StringWidth(text))/2, y, text, fg)
}

// DrawASCII writes multi-line art with its top-left at (x, y)
// Spaces are transparent; clipping is left to the surface
func DrawASCII(s Surface, art string, x, y int, fg terminal.RGB) {
	for row, line := range strings.Split(strings.Trim(art, "\n"), "\n") {
		col := x
		for _, r := range line {
			if r != ' ' {
				s.SetCell(col, y+row, r, fg)
			}
			col += max(runewidth.RuneWidth(r), 1)
		}
	}
}

// ArtSize returns the width and height of multi-line art as DrawASCII lays it out
func ArtSize(art string) (width, height int) {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	for _, line := range lines {
		width = max(width, runewidth.StringWidth(line))
	}
	return width, len(lines)
}

// DrawGround fills the bottom row
func DrawGround(s Surface, fg terminal.RGB) {
	y := s.Height() - 1
	for x := 0; x < s.Width(); x++ {
		s.SetCell(x, y, '█', fg)
	}
}

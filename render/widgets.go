package render

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/advent/terminal"
	"github.com/mattn/go-runewidth"
)

// Pointer is the mouse state widgets hit-test against
type Pointer struct {
	X, Y    int
	Held    bool // Button currently down, drives highlight color
	Clicked bool // Button released this frame, drives activation
}

// Box highlight colors
var (
	BoxColor        = terminal.RGBWhite
	BoxHoverColor   = terminal.RGBYellow
	BoxPressedColor = terminal.RGBGreen
)

// TextBox draws a bordered box around text, centered on screen and shifted by (dx, dy)
// Returns true when the pointer is over the box including its border
func TextBox(s Surface, text string, dx, dy int, p Pointer) bool {
	n := runewidth.StringWidth(text)
	x0 := (s.Width()-n)/2 + dx
	y0 := s.Height()/2 + dy

	hovered := p.X >= x0-3 && p.X <= x0+n+2 && p.Y >= y0-1 && p.Y <= y0+1

	color := BoxColor
	if hovered {
		color = BoxHoverColor
		if p.Held {
			color = BoxPressedColor
		}
	}

	// Interior background
	blank := strings.Repeat(" ", n+4)
	for row := -1; row <= 1; row++ {
		DrawText(s, x0-2, y0+row, blank, BoxColor)
	}

	bar := strings.Repeat("─", n+4)
	DrawText(s, x0-3, y0-1, "╭"+bar+"╮", color)
	DrawText(s, x0-3, y0+1, "╰"+bar+"╯", color)
	s.SetCell(x0-3, y0, '│', color)
	s.SetCell(x0+n+2, y0, '│', color)
	DrawText(s, x0, y0, text, color)

	return hovered
}

// Label draws a non-interactive box
func Label(s Surface, text string, dx, dy int) {
	TextBox(s, text, dx, dy, Pointer{X: -1, Y: -1})
}

// Answer is the outcome of a question frame
type Answer uint8

const (
	AnswerNone Answer = iota
	AnswerCorrect
	AnswerWrong
)

// String returns the answer name
func (a Answer) String() string {
	switch a {
	case AnswerCorrect:
		return "correct"
	case AnswerWrong:
		return "wrong"
	default:
		return "none"
	}
}

// answerSpacing is the horizontal distance between answer box centers
const answerSpacing = 20

// Question draws a prompt with a row of answer boxes
// answers[correct] is the right one; the result reports a click on a box this frame
func Question(s Surface, p Pointer, prompt string, answers []string, correct int) Answer {
	Label(s, prompt, 0, -5)

	first := -((len(answers) - 1) * answerSpacing) / 2
	correctHovered := false
	wrongHovered := false
	for i, a := range answers {
		hovered := TextBox(s, a, first+answerSpacing*i, 0, p)
		if i == correct {
			correctHovered = hovered
		} else if hovered {
			wrongHovered = true
		}
	}

	if !p.Clicked {
		return AnswerNone
	}
	switch {
	case correctHovered && !wrongHovered:
		Label(s, "Riktig!", 0, 5)
		return AnswerCorrect
	case wrongHovered:
		Label(s, "Feil!", 0, 5)
		return AnswerWrong
	}
	return AnswerNone
}

// Calendar layout
const (
	CalendarDays    = 24
	calendarColumns = 6
	calendarBoxW    = 6
	calendarPadding = 4
)

// Calendar draws the day grid and returns the clicked day (1-based) or 0
func Calendar(s Surface, p Pointer) int {
	rows := (CalendarDays + calendarColumns - 1) / calendarColumns
	xStart := -(calendarColumns*calendarBoxW)/2 - calendarBoxW
	yStart := -((rows - 1) * calendarPadding) / 2
	xStep := calendarBoxW + calendarPadding

	selected := 0
	for i := 0; i < CalendarDays; i++ {
		dx := xStart + (i%calendarColumns)*xStep
		dy := yStart + (i/calendarColumns)*calendarPadding
		if TextBox(s, fmt.Sprintf("%02d", i+1), dx, dy, p) && selected == 0 {
			selected = i + 1
		}
	}

	if !p.Clicked {
		return 0
	}
	return selected
}

package terminal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBBlack  = RGB{0, 0, 0}
	RGBWhite  = RGB{255, 255, 255}
	RGBGreen  = RGB{0, 255, 0}
	RGBYellow = RGB{255, 255, 0}
	RGBRed    = RGB{220, 50, 47}
	RGBSnow   = RGB{200, 220, 255}
	RGBGold   = RGB{255, 200, 60}
)

// Tcell converts to a true-color tcell.Color; tcell downsamples for 256-color terminals
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// ParseHex parses #rrggbb or rrggbb
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

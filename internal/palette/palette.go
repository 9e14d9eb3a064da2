package palette

import (
	"fmt"
	"math"
)

// Terminal control sequences shared by the player and the CLI.
const (
	Reset       = "\033[0m"
	ClearScreen = "\033[2J\033[H"
	HideCursor  = "\033[?25l"
	ShowCursor  = "\033[?25h"
)

// Channel phase offsets in degrees. Spacing the channels a third of a
// turn apart cycles the palette through the full rainbow as hue grows.
const (
	RedPhase   = 0.0
	GreenPhase = 120.0
	BluePhase  = 240.0
)

// Brightness ceilings: each channel lands in [0, 2*scale].
const (
	ScaleSolid = 127.0
	ScaleFade  = 63.0
)

const degToRad = math.Pi / 180

// PhaseColor maps a hue-like angle plus a channel phase offset to one
// channel intensity: (sin(hue+offset)+1)*scale, truncated to int. The
// sine bounds the result to [0, 2*scale], so no clamping is needed.
func PhaseColor(hue, phaseOffset, scale float64) int {
	return int((math.Sin((hue+phaseOffset)*degToRad) + 1) * scale)
}

// RGB evaluates PhaseColor at the three canonical channel offsets.
func RGB(hue, scale float64) (r, g, b int) {
	return PhaseColor(hue, RedPhase, scale),
		PhaseColor(hue, GreenPhase, scale),
		PhaseColor(hue, BluePhase, scale)
}

// Wrap surrounds text with a 24-bit foreground color escape and a reset.
// Callers guarantee r, g, b are already in [0, 255].
func Wrap(r, g, b int, text string) string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm%s%s", r, g, b, text, Reset)
}

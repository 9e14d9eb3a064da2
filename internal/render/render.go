package render

import (
	"math"
	"regexp"
	"strings"

	"github.com/san-kum/wavelab/internal/palette"
	"github.com/san-kum/wavelab/internal/wave"
)

const (
	DefaultWidth  = 60
	DefaultHeight = 20

	// Hue advance per column and per frame.
	DefaultHueStep      = 6
	DefaultFrameHueStep = 2
)

// Glyphs are the printable characters for the three cell intensities.
type Glyphs struct {
	Solid string
	Fade  string
	Blank string
}

var DefaultGlyphs = Glyphs{Solid: "█", Fade: "▒", Blank: " "}

// Renderer produces one grid of colored glyphs per frame counter. It
// holds no per-frame state: Render is a pure function of its argument.
type Renderer struct {
	Width        int
	Height       int
	HueStep      int
	FrameHueStep int
	Glyphs       Glyphs
	Field        *wave.Field
}

// New returns a renderer with the canonical wave field and glyphs.
func New(width, height int) *Renderer {
	return &Renderer{
		Width:        width,
		Height:       height,
		HueStep:      DefaultHueStep,
		FrameHueStep: DefaultFrameHueStep,
		Glyphs:       DefaultGlyphs,
		Field:        wave.DefaultField(height),
	}
}

// Render returns the full color frame, rows joined by newlines.
func (r *Renderer) Render(frame int) string {
	return r.render(frame, true)
}

// RenderPlain returns the same grid without escape sequences.
func (r *Renderer) RenderPlain(frame int) string {
	return r.render(frame, false)
}

func (r *Renderer) render(frame int, color bool) string {
	centers := r.Centerline(frame)

	var b strings.Builder
	for y := 0; y < r.Height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < r.Width; x++ {
			distance := math.Abs(float64(y) - centers[x])

			// Strict thresholds: exact boundaries fall to the
			// lower-intensity branch.
			switch {
			case distance < 0.5:
				b.WriteString(r.cell(x, frame, palette.ScaleSolid, r.Glyphs.Solid, color))
			case distance < 1.5:
				b.WriteString(r.cell(x, frame, palette.ScaleFade, r.Glyphs.Fade, color))
			default:
				b.WriteString(r.Glyphs.Blank)
			}
		}
	}
	return b.String()
}

func (r *Renderer) cell(x, frame int, scale float64, glyph string, color bool) string {
	if !color {
		return glyph
	}
	hue := float64((x*r.HueStep + frame*r.FrameHueStep) % 360)
	cr, cg, cb := palette.RGB(hue, scale)
	return palette.Wrap(cr, cg, cb, glyph)
}

// Centerline returns the wave centerline per column for one frame.
func (r *Renderer) Centerline(frame int) []float64 {
	centers := make([]float64, r.Width)
	for x := range centers {
		centers[x] = r.Field.Eval(float64(x), float64(frame))
	}
	return centers
}

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color escape sequences, leaving visible characters.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

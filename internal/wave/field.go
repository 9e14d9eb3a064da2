// Package wave models the combined waveform drawn across the grid: a
// sum of sinusoid components giving a vertical centerline per column,
// per frame.
package wave

import (
	"fmt"
	"math"
)

// Component is one sinusoid term: amplitude * sin(x/spaceDiv +
// frame/timeDiv), cosine when Cos is set. A negative TimeDiv makes the
// term travel in the opposite direction.
type Component struct {
	Amplitude float64
	SpaceDiv  float64
	TimeDiv   float64
	Cos       bool
}

func (c Component) Eval(x, frame float64) float64 {
	arg := x/c.SpaceDiv + frame/c.TimeDiv
	if c.Cos {
		return c.Amplitude * math.Cos(arg)
	}
	return c.Amplitude * math.Sin(arg)
}

// Field combines components around the grid's vertical midline.
type Field struct {
	Height     int
	Components []Component
}

// DefaultField returns the canonical three-term field.
func DefaultField(height int) *Field {
	return &Field{
		Height: height,
		Components: []Component{
			{Amplitude: 5, SpaceDiv: 5, TimeDiv: 10},
			{Amplitude: 3, SpaceDiv: 3, TimeDiv: -15},
			{Amplitude: 4, SpaceDiv: 7, TimeDiv: 8, Cos: true},
		},
	}
}

// Eval returns the wave centerline for column x at the given frame.
func (f *Field) Eval(x, frame float64) float64 {
	y := float64(f.Height) / 2
	for _, c := range f.Components {
		y += c.Eval(x, frame)
	}
	return y
}

// GetParams exposes component amplitudes for runtime tuning.
func (f *Field) GetParams() map[string]float64 {
	p := make(map[string]float64, len(f.Components))
	for i, c := range f.Components {
		p[fmt.Sprintf("amp%d", i+1)] = c.Amplitude
	}
	return p
}

func (f *Field) SetParam(name string, v float64) error {
	for i := range f.Components {
		if name == fmt.Sprintf("amp%d", i+1) {
			f.Components[i].Amplitude = v
			return nil
		}
	}
	return fmt.Errorf("unknown parameter: %s", name)
}

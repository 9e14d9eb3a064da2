// Package player runs the fixed-rate animation loop: clear, draw,
// sleep, repeat, until the context is cancelled.
package player

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/wavelab/internal/palette"
	"github.com/san-kum/wavelab/internal/render"
)

const (
	header   = "🌊 RAINBOW WAVE ANIMATION 🌊"
	farewell = "✨ Thanks for watching! ✨"
)

type Player struct {
	Renderer *render.Renderer
	FPS      int
	// Frames caps the run; 0 means run until the context is cancelled.
	Frames int
}

func New(r *render.Renderer, fps int) *Player {
	if fps <= 0 {
		fps = 20
	}
	return &Player{Renderer: r, FPS: fps}
}

// Run draws frames to w until the context is cancelled or the frame cap
// is reached. Cancellation clears the screen and prints a farewell; it
// is not an error.
func (p *Player) Run(ctx context.Context, w io.Writer) error {
	fmt.Fprint(w, palette.HideCursor)
	defer fmt.Fprint(w, palette.ShowCursor)

	ticker := time.NewTicker(time.Second / time.Duration(p.FPS))
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		if p.Frames > 0 && frame >= p.Frames {
			return nil
		}

		fmt.Fprint(w, palette.ClearScreen)
		fmt.Fprintln(w, palette.Wrap(255, 255, 255, header))
		fmt.Fprintln(w)
		fmt.Fprintln(w, p.Renderer.Render(frame))
		fmt.Fprintln(w, palette.Wrap(100, 100, 100, fmt.Sprintf("\nFrame: %d", frame)))

		select {
		case <-ctx.Done():
			fmt.Fprint(w, palette.ClearScreen)
			fmt.Fprintln(w, palette.Wrap(255, 100, 255, "\n"+farewell))
			return nil
		case <-ticker.C:
		}
	}
}

package player

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/wavelab/internal/render"
)

func TestRunFrameCap(t *testing.T) {
	p := New(render.New(10, 5), 1000)
	p.Frames = 3

	var buf bytes.Buffer
	if err := p.Run(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "Frame: "); got != 3 {
		t.Errorf("expected 3 frame footers, got %d", got)
	}
	if !strings.Contains(out, header) {
		t.Error("expected header banner in output")
	}
	if strings.Contains(out, farewell) {
		t.Error("capped run should not print the farewell")
	}
}

func TestRunCancel(t *testing.T) {
	p := New(render.New(10, 5), 1000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := p.Run(ctx, &buf); err != nil {
		t.Fatalf("cancellation should not be an error, got %v", err)
	}
	if !strings.Contains(buf.String(), farewell) {
		t.Error("expected farewell after cancellation")
	}
}

func TestNewClampsFPS(t *testing.T) {
	p := New(render.New(10, 5), 0)
	if p.FPS <= 0 {
		t.Error("fps should be clamped to a positive default")
	}
}

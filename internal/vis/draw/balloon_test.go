package draw

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

func hueOf(t *testing.T, y, height float64) float64 {
	t.Helper()
	c := BalloonColor(y, height)
	cf, ok := colorful.MakeColor(c)
	if !ok {
		t.Fatalf("MakeColor(%v) failed", c)
	}
	h, _, _ := cf.Hsl()
	return h
}

func TestBalloonColorHue(t *testing.T) {
	tests := []struct {
		y, height float64
		want      float64
	}{
		{0, 600, 280},
		{600, 600, 120},
		{300, 600, 200},
		{-50, 600, 280},
		{5000, 600, 120},
		{100, 0, 280},
	}

	for _, tt := range tests {
		if got := hueOf(t, tt.y, tt.height); math.Abs(got-tt.want) > 3 {
			t.Errorf("hue at y=%v/%v = %.1f, want %.0f", tt.y, tt.height, got, tt.want)
		}
	}
}

func TestBalloonColorOpaque(t *testing.T) {
	if c := BalloonColor(10, 100); c.A != 255 {
		t.Errorf("alpha = %d, want 255", c.A)
	}
}

func TestBalloonRectRounds(t *testing.T) {
	r := balloonRect(core.Balloon{X: 10.4, Y: 20.6, Width: 120, Height: 40})
	if r.Min.X != 10 || r.Min.Y != 21 || r.Dx() != 120 || r.Dy() != 40 {
		t.Errorf("balloonRect = %v", r)
	}
}

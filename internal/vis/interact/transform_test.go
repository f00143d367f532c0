package interact

import (
	"math"
	"testing"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

func TestTransformRoundTrip(t *testing.T) {
	transforms := []Transform{
		Identity,
		{Pan: core.Pt(10, -20), Zoom: 1},
		{Pan: core.Pt(-333.5, 71.25), Zoom: 0.3},
		{Pan: core.Pt(5, 5), Zoom: 1.728},
		{Pan: core.Pt(1e4, -1e4), Zoom: 3},
	}
	points := []core.Point{
		core.Pt(0, 0),
		core.Pt(200, 200),
		core.Pt(-50, 12.5),
		core.Pt(1234.567, -89.01),
	}

	for _, tr := range transforms {
		for _, p := range points {
			got := tr.ToContent(tr.ToScreen(p))
			if math.Abs(got.X-p.X) > 1e-9 || math.Abs(got.Y-p.Y) > 1e-9 {
				t.Errorf("%+v: round trip of %v = %v", tr, p, got)
			}
		}
	}
}

func TestTransformToContent(t *testing.T) {
	tr := Transform{Pan: core.Pt(100, 50), Zoom: 2}
	if got := tr.ToContent(core.Pt(300, 250)); got != core.Pt(100, 100) {
		t.Errorf("ToContent = %v, want (100,100)", got)
	}
	if got := tr.ToScreen(core.Pt(100, 100)); got != core.Pt(300, 250) {
		t.Errorf("ToScreen = %v, want (300,250)", got)
	}
}

func TestAffineMatchesToScreen(t *testing.T) {
	tr := Transform{Pan: core.Pt(12, -8), Zoom: 1.5}
	a := tr.Affine()
	c := core.Pt(40, 20)
	want := tr.ToScreen(c)

	got := a.Transform(f32Pt(c))
	if math.Abs(float64(got.X)-want.X) > 1e-3 || math.Abs(float64(got.Y)-want.Y) > 1e-3 {
		t.Errorf("Affine maps %v to %v, ToScreen gives %v", c, got, want)
	}
}

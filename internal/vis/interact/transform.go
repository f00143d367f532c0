// Package interact handles user interactions: pan, zoom and gesture
// classification.
package interact

import (
	"gioui.org/f32"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

// Transform maps between screen space (pixels relative to the canvas
// widget) and content space. It is the only place the mapping is written
// down; hit testing, drag deltas, drops and painting all go through it.
type Transform struct {
	Pan  core.Point
	Zoom float64
}

// Identity is the transform of a reset viewport.
var Identity = Transform{Zoom: 1}

// ToContent converts a screen point to content space.
func (t Transform) ToContent(p core.Point) core.Point {
	return p.Sub(t.Pan).Div(t.Zoom)
}

// ToScreen converts a content point to screen space.
func (t Transform) ToScreen(c core.Point) core.Point {
	return c.Mul(t.Zoom).Add(t.Pan)
}

// Affine returns the Gio transform that paints content-space drawing
// operations at their screen position.
func (t Transform) Affine() f32.Affine2D {
	z := float32(t.Zoom)
	return f32.Affine2D{}.
		Scale(f32.Point{}, f32.Pt(z, z)).
		Offset(f32.Pt(float32(t.Pan.X), float32(t.Pan.Y)))
}

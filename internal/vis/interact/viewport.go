package interact

import "github.com/elektrokombinacija/phrase-canvas/internal/core"

// Zoom limits and step.
const (
	MinZoom  = 0.3
	MaxZoom  = 3.0
	ZoomStep = 1.2
)

// Viewport manages the view transformation (pan and zoom).
type Viewport struct {
	Pan  core.Point // Pan offset in screen pixels
	Zoom float64    // Zoom level (1.0 = 100%)

	// Interaction state
	panning bool
	anchor  core.Point
}

// NewViewport creates a viewport at the identity transform.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1}
}

// Reset returns to zoom 1 and no pan offset.
func (v *Viewport) Reset() {
	v.Pan = core.Point{}
	v.Zoom = 1
}

// ZoomIn zooms in by one step, up to MaxZoom.
func (v *Viewport) ZoomIn() {
	v.Zoom = clampZoom(v.Zoom * ZoomStep)
}

// ZoomOut zooms out by one step, down to MinZoom.
func (v *Viewport) ZoomOut() {
	v.Zoom = clampZoom(v.Zoom / ZoomStep)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// BeginPan starts a pan gesture at a screen point.
func (v *Viewport) BeginPan(screen core.Point) {
	v.panning = true
	v.anchor = screen.Sub(v.Pan)
}

// ContinuePan moves the pan offset so the content under the anchor follows
// the pointer. Panning is unbounded. Without an active pan it does nothing.
func (v *Viewport) ContinuePan(screen core.Point) {
	if !v.panning {
		return
	}
	v.Pan = screen.Sub(v.anchor)
}

// EndPan ends the pan gesture. Safe to call when not panning.
func (v *Viewport) EndPan() {
	v.panning = false
}

// Panning reports whether a pan gesture is active.
func (v *Viewport) Panning() bool {
	return v.panning
}

// Transform returns the current screen/content mapping.
func (v *Viewport) Transform() Transform {
	return Transform{Pan: v.Pan, Zoom: v.Zoom}
}

// ToContent converts a screen point using the current transform.
func (v *Viewport) ToContent(screen core.Point) core.Point {
	return v.Transform().ToContent(screen)
}

// ToScreen converts a content point using the current transform.
func (v *Viewport) ToScreen(content core.Point) core.Point {
	return v.Transform().ToScreen(content)
}

// Package draw provides rendering functions for the canvas.
package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
)

// Canvas palette.
var (
	ColorBackground = color.NRGBA{R: 246, G: 244, B: 250, A: 255}
	ColorGrid       = color.NRGBA{R: 226, G: 222, B: 236, A: 255}
	ColorBounds     = color.NRGBA{R: 190, G: 180, B: 215, A: 255}
)

// DrawGrid draws a background grid of gridSize content units.
func DrawGrid(gtx layout.Context, tr interact.Transform, gridSize float64, col color.NRGBA) {
	bounds := gtx.Constraints.Max

	// Calculate visible content bounds
	minC := tr.ToContent(core.Pt(0, 0))
	maxC := tr.ToContent(core.Pt(float64(bounds.X), float64(bounds.Y)))

	// Snap to grid
	startX := math.Floor(minC.X/gridSize) * gridSize
	startY := math.Floor(minC.Y/gridSize) * gridSize

	for x := startX; x <= maxC.X; x += gridSize {
		sx := int(tr.ToScreen(core.Pt(x, 0)).X)
		if sx >= 0 && sx <= bounds.X {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(sx, 0, sx+1, bounds.Y)).Op())
		}
	}

	for y := startY; y <= maxC.Y; y += gridSize {
		sy := int(tr.ToScreen(core.Pt(0, y)).Y)
		if sy >= 0 && sy <= bounds.Y {
			paint.FillShape(gtx.Ops, col, clip.Rect(image.Rect(0, sy, bounds.X, sy+1)).Op())
		}
	}
}

// DrawBounds outlines the content area balloons are clamped to.
func DrawBounds(gtx layout.Context, tr interact.Transform, size core.Size, col color.NRGBA) {
	tl := tr.ToScreen(core.Pt(0, 0))
	br := tr.ToScreen(core.Pt(size.Width, size.Height))
	r := image.Rect(int(tl.X), int(tl.Y), int(br.X), int(br.Y))

	path := clip.Rect(r).Path()
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path, Width: 1}.Op())
}

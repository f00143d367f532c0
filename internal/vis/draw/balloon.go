package draw

import (
	"image"
	"image/color"
	"math"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
)

// Balloon colours run from purple at the top of the canvas to green at the
// bottom.
const (
	topHue     = 280
	bottomHue  = 120
	saturation = 0.7
	lightness  = 0.85
)

var (
	ColorBalloonBorder   = color.NRGBA{R: 120, G: 110, B: 150, A: 255}
	ColorBalloonSelected = color.NRGBA{R: 90, G: 70, B: 200, A: 255}
	ColorBalloonText     = color.NRGBA{R: 30, G: 28, B: 40, A: 255}
	ColorPreviewFill     = color.NRGBA{R: 90, G: 70, B: 200, A: 50}
	ColorCloseHandle     = color.NRGBA{R: 210, G: 60, B: 60, A: 255}
	ColorCloseGlyph      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// BalloonColor returns the fill for a balloon whose top edge is at y on a
// canvas of the given height.
func BalloonColor(y, canvasHeight float64) color.NRGBA {
	ratio := 0.0
	if canvasHeight > 0 {
		ratio = math.Min(math.Max(y/canvasHeight, 0), 1)
	}
	hue := topHue + (bottomHue-topHue)*ratio
	r, g, b := colorful.Hsl(hue, saturation, lightness).RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func balloonRect(b core.Balloon) image.Rectangle {
	return image.Rect(
		int(math.Round(b.X)), int(math.Round(b.Y)),
		int(math.Round(b.X+b.Width)), int(math.Round(b.Y+b.Height)),
	)
}

// DrawBalloons paints balloons in content space through the transform.
func DrawBalloons(gtx layout.Context, th *material.Theme, tr interact.Transform, balloons []core.Balloon, canvasHeight float64, selected string) {
	defer op.Affine(tr.Affine()).Push(gtx.Ops).Pop()

	for _, b := range balloons {
		fill := BalloonColor(b.Y, canvasHeight)
		border := ColorBalloonBorder
		width := float32(1)
		if b.ID == selected {
			border = ColorBalloonSelected
			width = 2.5
		}
		drawBox(gtx, th, b, fill, border, width)
	}
}

// DrawPreview paints the translucent outline of a phrase being dropped.
func DrawPreview(gtx layout.Context, th *material.Theme, tr interact.Transform, b core.Balloon) {
	defer op.Affine(tr.Affine()).Push(gtx.Ops).Pop()
	drawBox(gtx, th, b, ColorPreviewFill, ColorBalloonSelected, 1)
}

func drawBox(gtx layout.Context, th *material.Theme, b core.Balloon, fill, border color.NRGBA, borderWidth float32) {
	r := balloonRect(b)
	rr := clip.UniformRRect(r, 8)

	paint.FillShape(gtx.Ops, fill, rr.Op(gtx.Ops))
	paint.FillShape(gtx.Ops, border, clip.Stroke{Path: rr.Path(gtx.Ops), Width: borderWidth}.Op())

	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Label(th, unit.Sp(13), b.Phrase.Text)
		label.Color = ColorBalloonText
		label.Alignment = text.Middle
		label.MaxLines = 1
		return label.Layout(gtx)
	})
}

// DrawCloseHandle draws the delete handle centred on a screen point.
func DrawCloseHandle(gtx layout.Context, th *material.Theme, center core.Point, radius float64) {
	r := image.Rect(
		int(center.X-radius), int(center.Y-radius),
		int(center.X+radius), int(center.Y+radius),
	)
	paint.FillShape(gtx.Ops, ColorCloseHandle, clip.Ellipse(r).Op(gtx.Ops))

	defer op.Offset(r.Min).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(r.Size())
	layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Label(th, unit.Sp(12), "×")
		label.Color = ColorCloseGlyph
		return label.Layout(gtx)
	})
}

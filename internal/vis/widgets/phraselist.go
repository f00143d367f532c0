package widgets

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/state"
)

// Phrase list geometry. Rows have a fixed height so a pointer position maps
// straight to a row.
const (
	ListWidth    unit.Dp = 300
	rowHeight    unit.Dp = 36
	headerHeight unit.Dp = 60
)

var (
	colorListBackground = color.NRGBA{R: 236, G: 233, B: 243, A: 255}
	colorListDivider    = color.NRGBA{R: 210, G: 205, B: 222, A: 255}
	colorRowDragged     = color.NRGBA{R: 215, G: 208, B: 235, A: 255}
	colorListText       = color.NRGBA{R: 40, G: 36, B: 52, A: 255}
	colorListMuted      = color.NRGBA{R: 110, G: 104, B: 125, A: 255}
)

// PhraseList shows available phrases and starts phrase drags. It sits
// immediately left of the canvas with the same top edge.
type PhraseList struct {
	state *state.State
	list  widget.List
}

// NewPhraseList creates a new phrase list widget.
func NewPhraseList(st *state.State) *PhraseList {
	return &PhraseList{
		state: st,
		list:  widget.List{List: layout.List{Axis: layout.Vertical}},
	}
}

// Layout renders the list.
func (l *PhraseList) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	size := image.Pt(gtx.Dp(ListWidth), gtx.Constraints.Max.Y)
	gtx.Constraints = layout.Exact(size)
	defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, colorListBackground)
	paint.FillShape(gtx.Ops, colorListDivider, clip.Rect(image.Rect(size.X-1, 0, size.X, size.Y)).Op())

	l.handlePointerEvents(gtx, size)

	phrases := l.state.Available()
	l.layoutHeader(gtx, th, len(phrases))

	hdr := gtx.Dp(headerHeight)
	listGtx := gtx
	listGtx.Constraints = layout.Exact(image.Pt(size.X, max(0, size.Y-hdr)))
	stack := op.Offset(image.Pt(0, hdr)).Push(gtx.Ops)
	material.List(th, &l.list).Layout(listGtx, len(phrases), func(gtx layout.Context, i int) layout.Dimensions {
		return l.layoutRow(gtx, th, phrases[i])
	})
	stack.Pop()

	// On top of the rows, passing events through so the list still scrolls.
	pass := pointer.PassOp{}.Push(gtx.Ops)
	area := clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops)
	event.Op(gtx.Ops, l)
	pointer.CursorGrab.Add(gtx.Ops)
	area.Pop()
	pass.Pop()

	return layout.Dimensions{Size: size}
}

func (l *PhraseList) layoutHeader(gtx layout.Context, th *material.Theme, available int) {
	gtx.Constraints = layout.Exact(image.Pt(gtx.Constraints.Max.X, gtx.Dp(headerHeight)))
	layout.UniformInset(unit.Dp(10)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				title := material.Label(th, unit.Sp(16), "Phrase Library")
				title.Color = colorListText
				return title.Layout(gtx)
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				hint := material.Label(th, unit.Sp(12), fmt.Sprintf("Drag phrases to your canvas (%d available)", available))
				hint.Color = colorListMuted
				return hint.Layout(gtx)
			}),
		)
	})
}

func (l *PhraseList) layoutRow(gtx layout.Context, th *material.Theme, p core.Phrase) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Dp(rowHeight))
	gtx.Constraints = layout.Exact(size)

	if sess, ok := l.state.Edit.Session().(state.PlacingPhrase); ok && sess.Phrase.ID == p.ID {
		paint.FillShape(gtx.Ops, colorRowDragged, clip.Rect(image.Rectangle{Max: size}).Op())
	}

	return layout.Inset{Left: unit.Dp(10), Right: unit.Dp(10)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.W.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					n := material.Label(th, unit.Sp(11), fmt.Sprintf("%d.", p.OriginalIndex+1))
					n.Color = colorListMuted
					return n.Layout(gtx)
				}),
				layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					label := material.Label(th, unit.Sp(13), p.Text)
					label.Color = colorListText
					label.MaxLines = 1
					return label.Layout(gtx)
				}),
			)
		})
	})
}

// rowAt maps a list-local y coordinate to an index into the available
// phrases, using the scroll position of the last frame.
func (l *PhraseList) rowAt(gtx layout.Context, y float64) (int, bool) {
	hdr := float64(gtx.Dp(headerHeight))
	rowH := float64(gtx.Dp(rowHeight))
	if y < hdr || rowH <= 0 {
		return 0, false
	}
	pos := l.list.Position
	idx := pos.First + int((y-hdr+float64(pos.Offset))/rowH)
	if idx < 0 || idx >= len(l.state.Available()) {
		return 0, false
	}
	return idx, true
}

// toCanvas converts a list-local point to canvas screen space. The canvas
// starts at the list's right edge.
func toCanvas(p core.Point, listSize image.Point) core.Point {
	return p.Sub(core.Pt(float64(listSize.X), 0))
}

func (l *PhraseList) handlePointerEvents(gtx layout.Context, size image.Point) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: l,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}

		p := toCanvas(interact.Position(pe), size)
		switch pe.Kind {
		case pointer.Press:
			if !pe.Buttons.Contain(pointer.ButtonPrimary) {
				continue
			}
			if idx, ok := l.rowAt(gtx, float64(pe.Position.Y)); ok {
				l.state.BeginPhraseDrag(l.state.Available()[idx].ID, p)
			}
		case pointer.Drag:
			l.state.PointerMove(p)
		case pointer.Release:
			bounds := l.state.Bounds()
			over := p.X >= 0 && p.Y >= 0 && p.X < bounds.Width && p.Y < bounds.Height
			l.state.PointerUp(p, over)
		case pointer.Cancel:
			l.state.Cancel()
		}
	}
}

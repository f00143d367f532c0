// Package widgets provides Gio UI widgets for the editor.
package widgets

import (
	"image"

	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/draw"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/state"
)

// Canvas is the pannable, zoomable balloon surface.
type Canvas struct {
	state *state.State
}

// NewCanvas creates a new canvas widget.
func NewCanvas(st *state.State) *Canvas {
	return &Canvas{state: st}
}

// Layout renders the canvas.
func (c *Canvas) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	// Clip to bounds
	bounds := gtx.Constraints.Max
	defer clip.Rect(image.Rect(0, 0, bounds.X, bounds.Y)).Push(gtx.Ops).Pop()

	paint.Fill(gtx.Ops, draw.ColorBackground)

	// Balloons are clamped to the visible widget area.
	c.state.SetBounds(core.Size{Width: float64(bounds.X), Height: float64(bounds.Y)})

	c.handlePointerEvents(gtx)

	tr := c.state.Viewport.Transform()
	draw.DrawGrid(gtx, tr, 50, draw.ColorGrid)
	draw.DrawBounds(gtx, tr, c.state.Bounds(), draw.ColorBounds)

	selected, hasSelection := c.state.Selected()
	draw.DrawBalloons(gtx, th, tr, c.state.Balloons(), c.state.Bounds().Height, selected)

	if hasSelection {
		if b, ok := c.state.Balloon(selected); ok {
			draw.DrawCloseHandle(gtx, th, c.state.CloseHandleCenter(b), state.CloseHandleRadius)
		}
	}

	if preview, ok := c.state.Preview(); ok {
		draw.DrawPreview(gtx, th, tr, preview)
	}

	return layout.Dimensions{Size: bounds}
}

func (c *Canvas) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, c)
	c.cursor().Add(gtx.Ops)
	area.Pop()

	// Process events
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  c,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1 << 20, Max: 1 << 20},
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			c.handlePointerEvent(gtx, pe)
		}
	}
}

func (c *Canvas) handlePointerEvent(gtx layout.Context, ev pointer.Event) {
	pos := interact.Position(ev)

	switch ev.Kind {
	case pointer.Press:
		c.state.PointerDown(interact.PressFromEvent(ev, c.state.HitTest(pos)))

	case pointer.Drag:
		c.state.PointerMove(pos)

	case pointer.Release:
		c.state.PointerUp(pos, inside(pos, gtx.Constraints.Max))

	case pointer.Cancel:
		c.state.Cancel()

	case pointer.Scroll:
		switch {
		case ev.Scroll.Y < 0:
			c.state.Viewport.ZoomIn()
		case ev.Scroll.Y > 0:
			c.state.Viewport.ZoomOut()
		}
	}
}

func (c *Canvas) cursor() pointer.Cursor {
	switch c.state.Edit.Session().Kind() {
	case state.SessionPanning, state.SessionMovingItem:
		return pointer.CursorGrabbing
	case state.SessionPlacingNewItem:
		return pointer.CursorCrosshair
	}
	return pointer.CursorGrab
}

// inside reports whether a widget-local point lies within size.
func inside(p core.Point, size image.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(size.X) && p.Y < float64(size.Y)
}

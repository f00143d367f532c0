package state

import "github.com/elektrokombinacija/phrase-canvas/internal/core"

// ClampToBounds keeps a rectangle of the given size inside bounds. When the
// rectangle is larger than the bounds on an axis it is pinned to 0.
func ClampToBounds(pos core.Point, size core.Size, bounds core.Size) core.Point {
	return core.Point{
		X: clamp(pos.X, 0, bounds.Width-size.Width),
		Y: clamp(pos.Y, 0, bounds.Height-size.Height),
	}
}

// clamp limits v to [lo, hi]; lo wins when hi < lo.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// beginMove selects a balloon and starts dragging it from a screen point.
func (s *State) beginMove(id string, screen core.Point) bool {
	b, ok := s.Balloon(id)
	if !ok {
		return false
	}
	s.Edit.Select(id)

	// Content space, fixed for the whole drag.
	offset := s.Viewport.ToContent(screen).Sub(b.TopLeft())
	return s.Edit.begin(MovingBalloon{ID: id, Offset: offset}, &balloonDrag{
		state:  s,
		id:     id,
		offset: offset,
	})
}

// balloonDrag commits every pointer move straight to the balloon.
type balloonDrag struct {
	state  *State
	id     string
	offset core.Point
}

func (d *balloonDrag) move(screen core.Point) {
	b, ok := d.state.Balloon(d.id)
	if !ok {
		return
	}
	pos := d.state.Viewport.ToContent(screen).Sub(d.offset)
	pos = ClampToBounds(pos, core.Size{Width: b.Width, Height: b.Height}, d.state.bounds)
	d.state.MoveBalloon(d.id, pos.X, pos.Y)
}

// The position is already committed by the last move.
func (d *balloonDrag) release(core.Point, bool) {}

func (d *balloonDrag) cancel() {}

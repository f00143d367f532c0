package state

import (
	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
)

// PlacementFor returns the top-left corner and size of a balloon for text
// centred on a content-space point. The corner is floored at (0,0); there is
// no clamp against the far edges.
func PlacementFor(text string, at core.Point) (core.Point, core.Size) {
	size := core.SizeFor(text)
	pos := core.Point{
		X: max(0, at.X-size.Width/2),
		Y: max(0, at.Y-size.Height/2),
	}
	return pos, size
}

// CreateBalloon places an available phrase centred on a content-space point.
// It returns false when the phrase is not in the available list.
func (s *State) CreateBalloon(phraseID string, at core.Point) (core.Balloon, bool) {
	phrase, ok := s.takePhrase(phraseID)
	if !ok {
		return core.Balloon{}, false
	}

	pos, size := PlacementFor(phrase.Text, at)
	b := core.Balloon{
		ID:     s.newID(),
		Phrase: phrase,
		X:      pos.X,
		Y:      pos.Y,
		Width:  size.Width,
		Height: size.Height,
	}
	s.balloons = append(s.balloons, b)
	s.logger.Debug("balloon added", "id", b.ID, "text", phrase.Text, "x", b.X, "y", b.Y)
	s.changed()
	return b, true
}

// BeginPhraseDrag starts dragging an available phrase from the list. screen
// is the pointer position in canvas screen space.
func (s *State) BeginPhraseDrag(phraseID string, screen core.Point) bool {
	var phrase core.Phrase
	found := false
	for _, p := range s.available {
		if p.ID == phraseID {
			phrase, found = p, true
			break
		}
	}
	if !found {
		return false
	}
	return s.Edit.begin(PlacingPhrase{Phrase: phrase, Pointer: screen}, &phraseDrop{
		state:  s,
		phrase: phrase,
	})
}

// Preview returns where the dragged phrase would land if dropped now.
func (s *State) Preview() (core.Balloon, bool) {
	sess, ok := s.Edit.Session().(PlacingPhrase)
	if !ok {
		return core.Balloon{}, false
	}
	pos, size := PlacementFor(sess.Phrase.Text, s.Viewport.ToContent(sess.Pointer))
	return core.Balloon{
		Phrase: sess.Phrase,
		X:      pos.X,
		Y:      pos.Y,
		Width:  size.Width,
		Height: size.Height,
	}, true
}

// phraseDrop follows a phrase dragged from the list and places it on
// release over the canvas.
type phraseDrop struct {
	state  *State
	phrase core.Phrase
}

func (d *phraseDrop) move(screen core.Point) {
	d.state.Edit.session = PlacingPhrase{Phrase: d.phrase, Pointer: screen}
}

func (d *phraseDrop) release(screen core.Point, overCanvas bool) {
	if interact.ClassifyRelease(true, overCanvas) != interact.GesturePlaceNewItem {
		return
	}
	d.state.CreateBalloon(d.phrase.ID, d.state.Viewport.ToContent(screen))
}

func (d *phraseDrop) cancel() {}

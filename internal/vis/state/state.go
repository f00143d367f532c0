// Package state manages the editor state: available phrases, placed
// balloons, selection, the viewport and the live drag session.
package state

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
	"github.com/elektrokombinacija/phrase-canvas/internal/vis/interact"
)

// DefaultBounds is used until the canvas widget reports its size.
var DefaultBounds = core.Size{Width: 800, Height: 600}

// Key is a keyboard command understood by the editor.
type Key uint8

const (
	KeyDelete Key = iota
	KeyEscape
)

// State holds all editor state for one window.
type State struct {
	Viewport *interact.Viewport
	Edit     *EditState

	// OnChange is called with the full balloon list after every change to
	// it.
	OnChange func(balloons []core.Balloon)

	catalog   *core.Catalog
	available []core.Phrase
	balloons  []core.Balloon
	bounds    core.Size
	newID     func() string
	logger    *log.Logger
}

// Option configures a State.
type Option func(*State)

// WithIDGenerator replaces the balloon ID source.
func WithIDGenerator(fn func() string) Option {
	return func(s *State) { s.newID = fn }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *log.Logger) Option {
	return func(s *State) { s.logger = l }
}

// NewState creates editor state with every catalog phrase available.
func NewState(catalog *core.Catalog, opts ...Option) *State {
	s := &State{
		Viewport:  interact.NewViewport(),
		Edit:      NewEditState(),
		catalog:   catalog,
		available: catalog.Phrases(),
		bounds:    DefaultBounds,
		newID:     uuid.NewString,
		logger:    log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available returns the phrases not on the canvas, in catalog order.
func (s *State) Available() []core.Phrase {
	return s.available
}

// Balloons returns the placed balloons in paint order.
func (s *State) Balloons() []core.Balloon {
	return s.balloons
}

// Balloon looks up a placed balloon.
func (s *State) Balloon(id string) (core.Balloon, bool) {
	if i := s.balloonIndex(id); i >= 0 {
		return s.balloons[i], true
	}
	return core.Balloon{}, false
}

func (s *State) balloonIndex(id string) int {
	for i := range s.balloons {
		if s.balloons[i].ID == id {
			return i
		}
	}
	return -1
}

// Selected returns the selected balloon ID.
func (s *State) Selected() (string, bool) {
	return s.Edit.Selected()
}

// Bounds returns the canvas size in content units.
func (s *State) Bounds() core.Size {
	return s.bounds
}

// SetBounds records the canvas size used to clamp dragged balloons.
func (s *State) SetBounds(b core.Size) {
	s.bounds = b
}

// Restore loads persisted balloons. Balloons with an empty or repeated ID,
// or whose phrase is unknown to the catalog or already placed, are dropped;
// the number dropped is returned. OnChange is not called.
func (s *State) Restore(balloons []core.Balloon) int {
	s.reset()

	placed := make(map[string]bool, len(balloons))
	seen := make(map[string]bool, len(balloons))
	dropped := 0
	for _, b := range balloons {
		phrase, ok := s.catalog.Lookup(b.Phrase.ID)
		if !ok || placed[phrase.ID] || b.ID == "" || seen[b.ID] {
			dropped++
			continue
		}
		placed[phrase.ID] = true
		seen[b.ID] = true
		b.Phrase = phrase
		if !(b.Width > 0 && b.Height > 0) {
			size := core.SizeFor(phrase.Text)
			b.Width, b.Height = size.Width, size.Height
		}
		s.balloons = append(s.balloons, b)
	}

	available := s.available[:0]
	for _, p := range s.available {
		if !placed[p.ID] {
			available = append(available, p)
		}
	}
	s.available = available
	return dropped
}

// Reset returns every phrase to the list and clears the canvas, selection,
// viewport and any live session. OnChange is not called.
func (s *State) Reset() {
	s.reset()
	s.Viewport.Reset()
}

func (s *State) reset() {
	s.Cancel()
	s.Edit.ClearSelection()
	s.available = s.catalog.Phrases()
	s.balloons = nil
}

// MoveBalloon sets a balloon's top-left position. Unknown IDs are ignored.
func (s *State) MoveBalloon(id string, x, y float64) {
	i := s.balloonIndex(id)
	if i < 0 {
		return
	}
	s.balloons[i].X = x
	s.balloons[i].Y = y
	s.changed()
}

// DeleteBalloon removes a balloon and returns its phrase to the list at
// its original position. Unknown IDs are ignored.
func (s *State) DeleteBalloon(id string) bool {
	i := s.balloonIndex(id)
	if i < 0 {
		return false
	}
	b := s.balloons[i]
	s.balloons = append(s.balloons[:i], s.balloons[i+1:]...)

	s.available = append(s.available, b.Phrase)
	core.SortPhrases(s.available)

	if s.Edit.IsSelected(id) {
		s.Edit.ClearSelection()
	}
	s.logger.Debug("balloon removed", "id", id, "text", b.Phrase.Text)
	s.changed()
	return true
}

func (s *State) takePhrase(id string) (core.Phrase, bool) {
	for i, p := range s.available {
		if p.ID == id {
			s.available = append(s.available[:i], s.available[i+1:]...)
			return p, true
		}
	}
	return core.Phrase{}, false
}

func (s *State) changed() {
	if s.OnChange != nil {
		s.OnChange(s.balloons)
	}
}

// HitTest finds what a screen point lands on. The close handle of the
// selected balloon wins over balloon bodies; later balloons paint over
// earlier ones.
func (s *State) HitTest(screen core.Point) interact.Target {
	if id, ok := s.Edit.Selected(); ok {
		if b, ok := s.Balloon(id); ok && s.onCloseHandle(b, screen) {
			return interact.Target{Kind: interact.TargetCloseHandle, BalloonID: id}
		}
	}

	p := s.Viewport.ToContent(screen)
	for i := len(s.balloons) - 1; i >= 0; i-- {
		if s.balloons[i].Contains(p) {
			return interact.Target{Kind: interact.TargetBalloon, BalloonID: s.balloons[i].ID}
		}
	}
	return interact.Target{Kind: interact.TargetBackground}
}

// CloseHandleRadius is the screen-space radius of the delete handle drawn
// on the selected balloon's top-right corner.
const CloseHandleRadius = 10

// CloseHandleCenter returns the screen-space centre of a balloon's delete
// handle.
func (s *State) CloseHandleCenter(b core.Balloon) core.Point {
	return s.Viewport.ToScreen(core.Pt(b.X+b.Width, b.Y))
}

func (s *State) onCloseHandle(b core.Balloon, screen core.Point) bool {
	d := screen.Sub(s.CloseHandleCenter(b))
	return d.X*d.X+d.Y*d.Y <= CloseHandleRadius*CloseHandleRadius
}

// PointerDown classifies a press and starts the matching gesture. A press
// while a session is live is ignored.
func (s *State) PointerDown(p interact.Press) interact.Gesture {
	if s.Edit.Active() {
		return interact.GestureNone
	}

	g := interact.Classify(p)
	switch g {
	case interact.GesturePan:
		s.beginPan(p.Position)
	case interact.GestureDeselect:
		s.Edit.ClearSelection()
	case interact.GestureMoveItem:
		if !s.beginMove(p.Target.BalloonID, p.Position) {
			return interact.GestureNone
		}
	case interact.GestureDeleteItem:
		if !s.DeleteBalloon(p.Target.BalloonID) {
			return interact.GestureNone
		}
	}
	return g
}

// PointerMove forwards a pointer position to the live session. Without a
// session it does nothing.
func (s *State) PointerMove(screen core.Point) {
	if t := s.Edit.tracker; t != nil {
		t.move(screen)
	}
}

// PointerUp finishes the live session. overCanvas reports whether the
// release happened inside the canvas widget.
func (s *State) PointerUp(screen core.Point, overCanvas bool) {
	t := s.Edit.tracker
	if t == nil {
		return
	}
	defer s.Edit.end()
	t.release(screen, overCanvas)
}

// Cancel abandons the live session without committing a drop.
func (s *State) Cancel() {
	t := s.Edit.tracker
	if t == nil {
		return
	}
	defer s.Edit.end()
	t.cancel()
}

// HandleKey applies a keyboard command. Delete removes the selected
// balloon; Escape clears the selection and leaves any drag alone.
func (s *State) HandleKey(k Key) bool {
	switch k {
	case KeyDelete:
		id, ok := s.Edit.Selected()
		if !ok {
			return false
		}
		s.DeleteBalloon(id)
		s.Edit.ClearSelection()
		return true
	case KeyEscape:
		s.Edit.ClearSelection()
		return true
	}
	return false
}

func (s *State) beginPan(screen core.Point) {
	s.Viewport.BeginPan(screen)
	s.Edit.begin(Panning{Anchor: screen.Sub(s.Viewport.Pan)}, panTracker{s.Viewport})
}

type panTracker struct {
	viewport *interact.Viewport
}

func (t panTracker) move(p core.Point)        { t.viewport.ContinuePan(p) }
func (t panTracker) release(core.Point, bool) { t.viewport.EndPan() }
func (t panTracker) cancel()                  { t.viewport.EndPan() }

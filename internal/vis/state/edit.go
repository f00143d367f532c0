package state

import "github.com/elektrokombinacija/phrase-canvas/internal/core"

// SessionKind names the gesture a drag session belongs to.
type SessionKind uint8

const (
	SessionNone SessionKind = iota
	SessionPanning
	SessionMovingItem
	SessionPlacingNewItem
)

func (k SessionKind) String() string {
	return [...]string{"None", "Panning", "MovingItem", "PlacingNewItem"}[k]
}

// Session is the live drag session. It is one of Idle, Panning,
// MovingBalloon or PlacingPhrase.
type Session interface {
	Kind() SessionKind
}

// Idle means no gesture is in progress.
type Idle struct{}

// Panning carries the screen-space pan anchor.
type Panning struct {
	Anchor core.Point
}

// MovingBalloon carries the dragged balloon and the content-space offset
// from its top-left corner to the pointer.
type MovingBalloon struct {
	ID     string
	Offset core.Point
}

// PlacingPhrase carries a phrase dragged from the list and the last
// pointer position in canvas screen space.
type PlacingPhrase struct {
	Phrase  core.Phrase
	Pointer core.Point
}

func (Idle) Kind() SessionKind          { return SessionNone }
func (Panning) Kind() SessionKind       { return SessionPanning }
func (MovingBalloon) Kind() SessionKind { return SessionMovingItem }
func (PlacingPhrase) Kind() SessionKind { return SessionPlacingNewItem }

// tracker receives pointer input for the live session. One is installed
// when a session begins and dropped when it ends.
type tracker interface {
	move(p core.Point)
	release(p core.Point, overCanvas bool)
	cancel()
}

// EditState manages selection and the drag session.
type EditState struct {
	selected string
	session  Session
	tracker  tracker
}

// NewEditState creates an edit state with nothing selected and no session.
func NewEditState() *EditState {
	return &EditState{session: Idle{}}
}

// Select makes id the selected balloon.
func (e *EditState) Select(id string) {
	e.selected = id
}

// ClearSelection deselects.
func (e *EditState) ClearSelection() {
	e.selected = ""
}

// Selected returns the selected balloon ID.
func (e *EditState) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// IsSelected checks if id is the selected balloon.
func (e *EditState) IsSelected(id string) bool {
	return id != "" && e.selected == id
}

// Session returns the live session, Idle when none.
func (e *EditState) Session() Session {
	return e.session
}

// Active reports whether a drag session is live.
func (e *EditState) Active() bool {
	return e.tracker != nil
}

// begin installs a session and its tracker. It refuses to start a second
// session while one is live.
func (e *EditState) begin(s Session, t tracker) bool {
	if e.tracker != nil {
		return false
	}
	e.session = s
	e.tracker = t
	return true
}

// end drops the tracker and returns to Idle.
func (e *EditState) end() {
	e.session = Idle{}
	e.tracker = nil
}

package interact

import (
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

// Button identifies the pointer button that started a gesture.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonTertiary // middle button
)

// TargetKind says what a press landed on.
type TargetKind uint8

const (
	TargetBackground TargetKind = iota
	TargetBalloon
	TargetCloseHandle // delete handle of the selected balloon
)

// Target is the hit-test result for a press.
type Target struct {
	Kind      TargetKind
	BalloonID string
}

// Press is a pointer-down on the canvas, stripped of toolkit details.
type Press struct {
	Position core.Point // screen space
	Button   Button
	Ctrl     bool
	Target   Target
}

// Gesture is the classification of a press or release.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GesturePan
	GestureDeselect
	GestureMoveItem
	GestureDeleteItem
	GesturePlaceNewItem
)

func (g Gesture) String() string {
	return [...]string{"None", "Pan", "Deselect", "MoveItem", "DeleteItem", "PlaceNewItem"}[g]
}

// Classify decides what a pointer-down starts. It runs once per gesture.
func Classify(p Press) Gesture {
	switch p.Target.Kind {
	case TargetCloseHandle:
		return GestureDeleteItem
	case TargetBalloon:
		return GestureMoveItem
	}
	if p.Button == ButtonTertiary || (p.Button == ButtonPrimary && p.Ctrl) {
		return GesturePan
	}
	return GestureDeselect
}

// ClassifyRelease decides whether a pointer-up drops a phrase. Drops are
// the only gesture resolved at release time.
func ClassifyRelease(placing, overCanvas bool) Gesture {
	if placing && overCanvas {
		return GesturePlaceNewItem
	}
	return GestureNone
}

// ButtonOf picks the gesture button out of a Gio button set. The middle
// button wins so that a middle press with another button held still pans.
func ButtonOf(b pointer.Buttons) Button {
	switch {
	case b.Contain(pointer.ButtonTertiary):
		return ButtonTertiary
	case b.Contain(pointer.ButtonPrimary):
		return ButtonPrimary
	case b.Contain(pointer.ButtonSecondary):
		return ButtonSecondary
	}
	return ButtonPrimary
}

// PressFromEvent converts a Gio press event.
func PressFromEvent(ev pointer.Event, target Target) Press {
	return Press{
		Position: Position(ev),
		Button:   ButtonOf(ev.Buttons),
		Ctrl:     ev.Modifiers.Contain(key.ModCtrl),
		Target:   target,
	}
}

// Position returns the event position as a screen-space point.
func Position(ev pointer.Event) core.Point {
	return core.Pt(float64(ev.Position.X), float64(ev.Position.Y))
}

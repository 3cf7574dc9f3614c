// Package widget defines the retained-mode widget protocol: Measure,
// Layout, Paint, and HandleEvent, plus the Flex container that arranges
// children along a main and cross axis.
package widget

import "github.com/paiml/presentar-sub007/geometry"

// MouseButton identifies which mouse button an event refers to.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButton4
	MouseButton5
)

// KeyName identifies a non-printable or otherwise named key. Printable
// keys are carried as a rune on Key instead of a KeyName.
type KeyName int

const (
	KeyNone KeyName = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Key is either a printable rune or one of the named keys above.
type Key struct {
	Rune rune
	Name KeyName
	Ctrl bool
	Alt  bool
}

// EventKind discriminates the InputEvent union.
type EventKind int

const (
	EventMouseMove EventKind = iota
	EventMouseDown
	EventMouseUp
	EventScroll
	EventKeyDown
	EventKeyUp
	EventTextInput
	EventFocusIn
	EventFocusOut
	EventMouseEnter
	EventMouseLeave
	EventResize
)

// InputEvent is the single event type dispatched through the widget tree.
// Only the fields relevant to Kind are populated.
type InputEvent struct {
	Kind     EventKind
	Position geometry.Position
	Button   MouseButton
	DeltaX   float32
	DeltaY   float32
	Key      Key
	Text     string
	Size     geometry.Size
}

// Message is returned by a widget's HandleEvent to signal that it consumed
// an event and to bubble an application-defined payload upward. A nil
// Message means the event was not handled by this widget.
type Message struct {
	Source  Widget
	Payload any
}

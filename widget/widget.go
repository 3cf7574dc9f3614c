package widget

import (
	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/geometry"
)

// Widget is the four-operation protocol every node in the retained-mode
// tree implements: measure its desired size under constraints, accept a
// final layout rect, paint itself into a canvas, and handle input.
//
// Children are exposed read-only by Children and mutably by ChildrenMut;
// there is deliberately no generic insert/remove API on the interface
// itself — containers that support mutation (Flex) expose their own typed
// methods instead.
type Widget interface {
	Measure(constraints geometry.Constraints) geometry.Size
	Layout(rect geometry.Rect)
	Paint(c canvas.Canvas)
	HandleEvent(ev InputEvent) *Message

	Children() []Widget
	ChildrenMut() []Widget

	Bounds() geometry.Rect
}

// Base provides the bookkeeping every concrete widget needs (its last
// assigned rect) so leaf widgets only have to implement Measure, Paint,
// and HandleEvent.
type Base struct {
	rect geometry.Rect
}

// Layout stores rect for later Bounds/Paint calls.
func (b *Base) Layout(rect geometry.Rect) { b.rect = rect }

// Bounds returns the rect assigned by the last Layout call.
func (b *Base) Bounds() geometry.Rect { return b.rect }

// Children returns no children; leaf widgets embedding Base inherit this.
func (b *Base) Children() []Widget { return nil }

// ChildrenMut returns no children; leaf widgets embedding Base inherit this.
func (b *Base) ChildrenMut() []Widget { return nil }

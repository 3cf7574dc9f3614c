package widget

import (
	"testing"

	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/geometry"
)

// fixedLeaf is a minimal Widget used to exercise the tree protocol in
// isolation from any real rendering content.
type fixedLeaf struct {
	Base
	natural geometry.Size
	painted int
	handled *Message
}

func newFixedLeaf(w, h int) *fixedLeaf {
	return &fixedLeaf{natural: geometry.Size{Width: w, Height: h}}
}

func (f *fixedLeaf) Measure(c geometry.Constraints) geometry.Size {
	return c.Constrain(f.natural)
}

func (f *fixedLeaf) Paint(c canvas.Canvas) { f.painted++ }

func (f *fixedLeaf) HandleEvent(ev InputEvent) *Message { return f.handled }

func TestBaseTracksLastLayout(t *testing.T) {
	leaf := newFixedLeaf(10, 2)
	rect := geometry.NewRect(1, 2, 10, 2)
	leaf.Layout(rect)
	if leaf.Bounds() != rect {
		t.Fatalf("got %v, want %v", leaf.Bounds(), rect)
	}
}

func TestBaseHasNoChildren(t *testing.T) {
	leaf := newFixedLeaf(1, 1)
	if leaf.Children() != nil || leaf.ChildrenMut() != nil {
		t.Fatal("expected leaf widget to report no children")
	}
}

func TestFlexRowSumsMainAxisAndMaxesCrossAxis(t *testing.T) {
	f := NewFlex(Row).WithGap(1)
	f.Add(newFixedLeaf(4, 2), 0, 0, 0)
	f.Add(newFixedLeaf(6, 3), 0, 0, 0)

	size := f.Measure(geometry.Unbounded())
	if size.Width != 4+1+6 {
		t.Fatalf("width = %d, want %d", size.Width, 11)
	}
	if size.Height != 3 {
		t.Fatalf("height = %d, want 3", size.Height)
	}
}

func TestFlexLayoutPositionsChildrenAlongRow(t *testing.T) {
	a := newFixedLeaf(4, 2)
	b := newFixedLeaf(4, 2)
	f := NewFlex(Row).WithGap(1)
	f.Add(a, 0, 0, 4)
	f.Add(b, 0, 0, 4)

	f.Layout(geometry.NewRect(0, 0, 9, 2))

	if a.Bounds().Pos.Col != 0 {
		t.Fatalf("first child col = %d, want 0", a.Bounds().Pos.Col)
	}
	if b.Bounds().Pos.Col != 5 {
		t.Fatalf("second child col = %d, want 5", b.Bounds().Pos.Col)
	}
}

func TestFlexGrowDistributesRemainingSpace(t *testing.T) {
	a := newFixedLeaf(2, 1)
	b := newFixedLeaf(2, 1)
	f := NewFlex(Row)
	f.Add(a, 1, 0, 2)
	f.Add(b, 1, 0, 2)

	f.Layout(geometry.NewRect(0, 0, 10, 1))

	if a.Bounds().Size.Width != 5 {
		t.Fatalf("first child width = %d, want 5", a.Bounds().Size.Width)
	}
	if b.Bounds().Size.Width != 5 {
		t.Fatalf("second child width = %d, want 5", b.Bounds().Size.Width)
	}
}

func TestFlexShrinkReducesOverflowingChildren(t *testing.T) {
	a := newFixedLeaf(10, 1)
	b := newFixedLeaf(10, 1)
	f := NewFlex(Row)
	f.Add(a, 0, 1, 10)
	f.Add(b, 0, 1, 10)

	f.Layout(geometry.NewRect(0, 0, 10, 1))

	total := a.Bounds().Size.Width + b.Bounds().Size.Width
	if total > 10 {
		t.Fatalf("children overflow container: total width %d > 10", total)
	}
}

func TestFlexCrossStretchFillsContainerHeight(t *testing.T) {
	a := newFixedLeaf(4, 1)
	f := NewFlex(Row)
	f.Add(a, 0, 0, 4)
	f.Layout(geometry.NewRect(0, 0, 4, 6))

	if a.Bounds().Size.Height != 6 {
		t.Fatalf("expected stretched height 6, got %d", a.Bounds().Size.Height)
	}
}

func TestFlexHandleEventStopsAtFirstHandler(t *testing.T) {
	a := newFixedLeaf(4, 4)
	b := newFixedLeaf(4, 4)
	wantMsg := &Message{Source: b}
	b.handled = wantMsg

	f := NewFlex(Row)
	f.Add(a, 0, 0, 4)
	f.Add(b, 0, 0, 4)
	f.Layout(geometry.NewRect(0, 0, 8, 4))

	got := f.HandleEvent(InputEvent{Kind: EventKeyDown, Key: Key{Rune: 'x'}})
	if got != wantMsg {
		t.Fatalf("expected bubbled message from second child")
	}
}

func TestFlexHandleEventPrefersLastChildOverEarlierOnes(t *testing.T) {
	a := newFixedLeaf(4, 4)
	b := newFixedLeaf(4, 4)
	aMsg := &Message{Source: a}
	bMsg := &Message{Source: b}
	a.handled = aMsg
	b.handled = bMsg

	f := NewFlex(Row)
	f.Add(a, 0, 0, 4)
	f.Add(b, 0, 0, 4)
	f.Layout(geometry.NewRect(0, 0, 8, 4))

	got := f.HandleEvent(InputEvent{Kind: EventKeyDown, Key: Key{Rune: 'x'}})
	if got != bMsg {
		t.Fatalf("expected message from last (frontmost) child b, got %v", got)
	}
}

func TestFlexPaintDelegatesToChildren(t *testing.T) {
	a := newFixedLeaf(1, 1)
	b := newFixedLeaf(1, 1)
	f := NewFlex(Column)
	f.Add(a, 0, 0, 1)
	f.Add(b, 0, 0, 1)
	f.Layout(geometry.NewRect(0, 0, 1, 2))

	buf := cellbuffer.NewBuffer(2, 2)
	f.Paint(canvas.Canvas(canvasFor(buf)))

	if a.painted != 1 || b.painted != 1 {
		t.Fatalf("expected each child painted once, got a=%d b=%d", a.painted, b.painted)
	}
}

func canvasFor(buf *cellbuffer.Buffer) canvas.Canvas {
	return canvas.NewTerminalCanvas(buf)
}

func TestFlexAddPanicsOnNegativeGrow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative grow factor")
		}
	}()
	NewFlex(Row).Add(newFixedLeaf(1, 1), -1, 0, 0)
}

func TestFlexWithGapPanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative gap")
		}
	}()
	NewFlex(Row).WithGap(-1)
}

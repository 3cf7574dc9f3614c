package app

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/paiml/presentar-sub007/brick"
	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/colormode"
	"github.com/paiml/presentar-sub007/displayrules"
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/paiml/presentar-sub007/metrics"
	"github.com/paiml/presentar-sub007/widget"
	"github.com/rs/zerolog"
)

type scriptedInput struct {
	events []widget.InputEvent
}

func (s *scriptedInput) Poll(timeout time.Duration) (widget.InputEvent, bool) {
	if len(s.events) == 0 {
		return widget.InputEvent{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

type fixedSize struct {
	w, h int
}

func (f fixedSize) Size() (int, int, error) { return f.w, f.h, nil }

type countingWidget struct {
	widget.Base
	paints int
}

func (c *countingWidget) Measure(cs geometry.Constraints) geometry.Size {
	return cs.Constrain(geometry.Size{Width: 10, Height: 5})
}
func (c *countingWidget) Paint(canv canvas.Canvas)                 { c.paints++ }
func (c *countingWidget) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }

// gatedWidget is a leaf widget that also implements brick.Node, for
// exercising Loop.Step's gate-wired paint path.
type gatedWidget struct {
	widget.Base
	brick  brick.Brick
	paints int
}

func (g *gatedWidget) Measure(cs geometry.Constraints) geometry.Size {
	return cs.Constrain(geometry.Size{Width: 4, Height: 1})
}
func (g *gatedWidget) Paint(c canvas.Canvas)                       { g.paints++ }
func (g *gatedWidget) HandleEvent(ev widget.InputEvent) *widget.Message { return nil }
func (g *gatedWidget) Brick() brick.Brick                           { return g.brick }

func newTestLoop(root widget.Widget, input InputSource) (*Loop, *bytes.Buffer) {
	var out bytes.Buffer
	state := NewState(displayrules.SystemCapabilities{}, []PanelID{"cpu"})
	bus := metrics.NewBus()
	l := NewLoop(state, root, bus, input, fixedSize{10, 5}, &out, colormode.TrueColor, 10, 5)
	return l, &out
}

func TestStepPaintsRootEachFrame(t *testing.T) {
	root := &countingWidget{}
	l, _ := newTestLoop(root, &scriptedInput{})

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if root.paints != 1 {
		t.Fatalf("got %d paints, want 1", root.paints)
	}
}

func TestStepRoutesRootThroughGateWhenConfigured(t *testing.T) {
	root := &gatedWidget{brick: brick.Default{}}
	l, _ := newTestLoop(root, &scriptedInput{})
	l.WithGate(brick.NewGate(zerolog.New(io.Discard)))

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if root.paints != 1 {
		t.Fatalf("got %d paints, want 1", root.paints)
	}
}

func TestStepGatesNestedPanelsUnderContainer(t *testing.T) {
	passing := &gatedWidget{brick: brick.Default{}}
	failing := &gatedWidget{brick: brick.NewSimpleBrick("broken").WithCustomVerify(func() bool { return false })}

	flex := widget.NewFlex(widget.Row)
	flex.Add(passing, 1, 1, 0)
	flex.Add(failing, 1, 1, 0)

	l, _ := newTestLoop(flex, &scriptedInput{})
	l.WithGate(brick.NewGate(zerolog.New(io.Discard)))

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if passing.paints != 1 {
		t.Fatalf("got %d paints for passing child, want 1", passing.paints)
	}
	if failing.paints != 0 {
		t.Fatalf("got %d paints for failing child, want 0 (gate should block it)", failing.paints)
	}
	found := false
	size := l.Buffer().Size()
	for row := 0; row < size.Height && !found; row++ {
		for col := 0; col < size.Width; col++ {
			if l.Buffer().Get(row, col).Bg != (cellbuffer.Color{}) {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatal("expected diagnostic overlay painted somewhere for failing child's bounds")
	}
}

func TestStepDetectsResizeAndRebuildsBuffer(t *testing.T) {
	root := &countingWidget{}
	input := &scriptedInput{}
	var out bytes.Buffer
	state := NewState(displayrules.SystemCapabilities{}, nil)
	bus := metrics.NewBus()
	l := NewLoop(state, root, bus, input, fixedSize{20, 8}, &out, colormode.TrueColor, 10, 5)

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if l.Buffer().Width() != 20 || l.Buffer().Height() != 8 {
		t.Fatalf("got %dx%d, want 20x8", l.Buffer().Width(), l.Buffer().Height())
	}
}

func TestRunExitsWhenQuitRequested(t *testing.T) {
	root := &countingWidget{}
	state := NewState(displayrules.SystemCapabilities{}, nil)
	bus := metrics.NewBus()
	var out bytes.Buffer
	quitEvent := widget.InputEvent{Kind: widget.EventKeyDown, Key: widget.Key{Rune: 'q'}}
	input := &scriptedInput{events: []widget.InputEvent{quitEvent}}

	l := NewLoop(state, root, bus, input, fixedSize{10, 5}, &out, colormode.TrueColor, 10, 5)
	l.WithHotkeys(func(s *State, ev widget.InputEvent) bool {
		if ev.Kind == widget.EventKeyDown && ev.Key.Rune == 'q' {
			s.RequestQuit()
			return true
		}
		return false
	})

	if err := l.Run(); err != nil {
		t.Fatal(err)
	}
	if !state.ShouldQuit() {
		t.Fatal("expected state to be quit after Run returns")
	}
}

func TestHotkeyConsumedEventNeverReachesWidget(t *testing.T) {
	root := &countingWidget{}
	state := NewState(displayrules.SystemCapabilities{}, nil)
	bus := metrics.NewBus()
	var out bytes.Buffer
	ev := widget.InputEvent{Kind: widget.EventKeyDown, Key: widget.Key{Rune: 'x'}}
	input := &scriptedInput{events: []widget.InputEvent{ev}}

	l := NewLoop(state, root, bus, input, fixedSize{10, 5}, &out, colormode.TrueColor, 10, 5)
	consumed := false
	l.WithHotkeys(func(s *State, ev widget.InputEvent) bool {
		consumed = true
		return true
	})

	if err := l.Step(); err != nil {
		t.Fatal(err)
	}
	if !consumed {
		t.Fatal("expected hotkey handler to be invoked")
	}
}

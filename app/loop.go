package app

import (
	"io"
	"time"

	"github.com/paiml/presentar-sub007/brick"
	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/colormode"
	"github.com/paiml/presentar-sub007/diffrenderer"
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/paiml/presentar-sub007/layoutengine"
	"github.com/paiml/presentar-sub007/metrics"
	"github.com/paiml/presentar-sub007/widget"
)

// InputSource is polled once per loop iteration with a bounded timeout; it
// returns ok=false if no event arrived before the timeout elapsed.
type InputSource interface {
	Poll(timeout time.Duration) (widget.InputEvent, bool)
}

// SizeSource reports the current terminal size so the loop can detect a
// resize between ticks without the input source itself emitting a
// synthetic event.
type SizeSource interface {
	Size() (width, height int, err error)
}

// HotkeyHandler gets first look at every polled event, before it reaches
// the widget tree; returning true means the event was consumed and
// should not be dispatched further.
type HotkeyHandler func(state *State, ev widget.InputEvent) bool

const defaultPollTimeout = 100 * time.Millisecond

// Loop owns the buffer, renderer, widget tree, state, and I/O for one
// running application instance, and drives the single cooperative UI
// thread described by the frame pipeline: poll input, apply a tick,
// detect resize, measure/layout/paint, flush.
type Loop struct {
	state  *State
	root   widget.Widget
	bus    *metrics.Bus
	input  InputSource
	size   SizeSource
	out    io.Writer
	hotkey HotkeyHandler

	buf      *cellbuffer.Buffer
	renderer *diffrenderer.Renderer
	engine   *layoutengine.Engine
	gate     *brick.Gate

	pollTimeout  time.Duration
	tickInterval time.Duration
	lastTick     time.Time
	now          func() time.Time
}

// NewLoop constructs a Loop ready to Run. width/height seed the initial
// CellBuffer; a subsequent size change is detected via SizeSource on each
// iteration.
func NewLoop(state *State, root widget.Widget, bus *metrics.Bus, input InputSource, size SizeSource, out io.Writer, mode colormode.Mode, width, height int) *Loop {
	buf := cellbuffer.NewBuffer(width, height)
	return &Loop{
		state:        state,
		root:         root,
		bus:          bus,
		input:        input,
		size:         size,
		out:          out,
		buf:          buf,
		renderer:     diffrenderer.New(out, mode),
		engine:       layoutengine.New(),
		pollTimeout:  defaultPollTimeout,
		tickInterval: time.Second,
		now:          time.Now,
	}
}

// WithHotkeys installs a handler consulted before widget dispatch.
func (l *Loop) WithHotkeys(h HotkeyHandler) *Loop {
	l.hotkey = h
	return l
}

// WithTickInterval overrides the default 1Hz metrics-apply cadence.
func (l *Loop) WithTickInterval(d time.Duration) *Loop {
	l.tickInterval = d
	return l
}

// WithPollTimeout overrides the default 100ms input poll timeout.
func (l *Loop) WithPollTimeout(d time.Duration) *Loop {
	l.pollTimeout = d
	return l
}

// WithGate installs a brick.Gate to verify every gated widget in the tree
// immediately before it paints. Without a gate, Step paints the tree
// directly with no verification step.
func (l *Loop) WithGate(gate *brick.Gate) *Loop {
	l.gate = gate
	return l
}

// Step runs exactly one iteration of the frame pipeline: poll, tick,
// resize-check, measure/layout/paint, flush. Exported separately from Run
// so tests can drive individual frames deterministically.
func (l *Loop) Step() error {
	if ev, ok := l.input.Poll(l.pollTimeout); ok {
		l.dispatch(ev)
	}

	if l.now().Sub(l.lastTick) >= l.tickInterval {
		if snapshot, ok := l.bus.TryReceive(); ok {
			l.state.ApplySnapshot(snapshot)
		}
		l.lastTick = l.now()
	}

	if l.size != nil {
		if w, h, err := l.size.Size(); err == nil {
			current := l.buf.Size()
			if w != current.Width || h != current.Height {
				l.buf = cellbuffer.NewBuffer(w, h)
				l.renderer.Clear()
				l.engine.Invalidate()
			}
		}
	}

	viewport := l.buf.Size()
	l.state.SetViewport(viewport)
	l.engine.Compute(l.root, viewport)

	c := canvas.NewTerminalCanvas(l.buf)
	if l.gate != nil {
		paintGated(l.root, l.gate, c)
	} else {
		l.root.Paint(c)
	}

	return l.renderer.Flush(l.buf)
}

// paintGated walks w's subtree, routing any node that declares a Brick
// through gate.Run (verify-then-paint-or-diagnose). A plain container
// (e.g. *widget.Flex) has no Brick of its own and paints by delegating
// straight to its children, so paintGated recurses into Children() instead
// of calling the container's own Paint — otherwise the container's Paint
// would paint its children directly and route them around the gate.
func paintGated(w widget.Widget, gate *brick.Gate, c canvas.Canvas) {
	if node, ok := w.(brick.Node); ok {
		gate.Run(node, c)
		return
	}
	children := w.Children()
	if len(children) == 0 {
		w.Paint(c)
		return
	}
	for _, child := range children {
		paintGated(child, gate, c)
	}
}

// Run drives Step in a cooperative loop until the application state
// signals quit. In-flight writes are allowed to complete; there is no
// async cancellation of a half-painted frame — a partial buffer is
// simply re-rendered next iteration.
func (l *Loop) Run() error {
	for !l.state.ShouldQuit() {
		if err := l.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) dispatch(ev widget.InputEvent) {
	if ev.Kind == widget.EventResize {
		l.state.SetViewport(ev.Size)
	}
	if l.hotkey != nil && l.hotkey(l.state, ev) {
		return
	}
	l.root.HandleEvent(ev)
}

// Buffer exposes the current CellBuffer for diagnostics and tests.
func (l *Loop) Buffer() *cellbuffer.Buffer { return l.buf }

// Viewport returns the loop's current viewport size.
func (l *Loop) Viewport() geometry.Size { return l.buf.Size() }

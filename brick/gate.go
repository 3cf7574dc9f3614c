package brick

import (
	"fmt"
	"time"

	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/geometry"
	"github.com/rs/zerolog"
)

// Node pairs a paintable widget with the Brick guarding it. The gate
// operates on this pair rather than on widget.Widget directly so a
// widget's rendering concern and its verification concern stay separate
// interfaces.
type Node interface {
	Brick() Brick
	Bounds() geometry.Rect
	Paint(c canvas.Canvas)
}

// Gate runs each node's Brick before painting it, tracking per-brick
// latency across frames so a budget overrun surfaces as a failed
// MaxLatency assertion on the following frame rather than this one.
type Gate struct {
	log      zerolog.Logger
	overrun  map[string]bool
	lastTime map[string]time.Duration
}

// NewGate creates a Gate that logs verification failures through log.
func NewGate(log zerolog.Logger) *Gate {
	return &Gate{
		log:      log,
		overrun:  make(map[string]bool),
		lastTime: make(map[string]time.Duration),
	}
}

// Run verifies node's Brick, paints it if verification passes, and paints
// a diagnostic overlay in its bounds instead if it fails. It never
// panics: a failing brick degrades to a visible error indicator, not a
// stopped render pass.
//
// TextVisible and ContrastRatio are content assertions: the gate cannot
// check them against the Brick alone, since the Brick doesn't know what
// its widget is about to draw. When a node declares either, Run paints
// the node into a scratch RecordingCanvas first, inspects the recorded
// commands, and folds any failures into the same Verification the
// declarative/custom checks produced, before deciding whether the real
// paint goes ahead.
func (g *Gate) Run(node Node, c canvas.Canvas) {
	start := time.Now()
	b := node.Brick()
	name := b.Name()
	assertions := b.Assertions()

	verification := b.Verify()
	if g.overrun[name] {
		verification.Failed = append(verification.Failed, FailedAssertion{
			Assertion: Assertion{Kind: MaxLatency, MaxLatencyMS: b.Budget().TotalMS},
			Reason:    "previous frame exceeded budget",
		})
	}

	bounds := node.Bounds()
	if needsContentCheck(assertions) && bounds.Size.Width > 0 && bounds.Size.Height > 0 {
		scratch := canvas.NewRecordingCanvas(bounds.Size.Width, bounds.Size.Height)
		node.Paint(scratch)
		verification.Failed = append(verification.Failed, checkContentAssertions(assertions, scratch.Commands)...)
	}

	if !verification.IsValid() {
		g.logFailure(name, verification)
		g.paintDiagnostic(bounds, c)
		g.record(name, time.Since(start), b.Budget())
		return
	}

	node.Paint(c)
	g.record(name, time.Since(start), b.Budget())
}

// needsContentCheck reports whether any assertion requires inspecting
// what the widget actually draws, as opposed to MaxLatency/Custom, which
// are checked without reference to drawn content.
func needsContentCheck(assertions []Assertion) bool {
	for _, a := range assertions {
		if a.Kind == TextVisible || a.Kind == ContrastRatio {
			return true
		}
	}
	return false
}

// checkContentAssertions evaluates TextVisible and ContrastRatio against
// the commands a dry-run paint recorded.
func checkContentAssertions(assertions []Assertion, cmds []canvas.DrawCommand) []FailedAssertion {
	var failed []FailedAssertion
	for _, a := range assertions {
		switch a.Kind {
		case TextVisible:
			if !anyTextDrawn(cmds) {
				failed = append(failed, FailedAssertion{Assertion: a, Reason: "no text was drawn"})
			}
		case ContrastRatio:
			if ratio, ok := minTextContrast(cmds); ok && float64(ratio) < a.ContrastMin {
				failed = append(failed, FailedAssertion{
					Assertion: a,
					Reason:    fmt.Sprintf("text contrast %.2f below minimum %.2f", ratio, a.ContrastMin),
				})
			}
		}
	}
	return failed
}

func anyTextDrawn(cmds []canvas.DrawCommand) bool {
	for _, cmd := range cmds {
		if cmd.Kind == canvas.CmdDrawText && cmd.Text != "" {
			return true
		}
	}
	return false
}

// minTextContrast returns the worst fg/bg contrast ratio among all drawn
// text commands. ok is false when no text was drawn, since there is
// nothing for ContrastRatio to check.
func minTextContrast(cmds []canvas.DrawCommand) (ratio float32, ok bool) {
	ratio = -1
	for _, cmd := range cmds {
		if cmd.Kind != canvas.CmdDrawText || cmd.Text == "" {
			continue
		}
		r := cmd.Fg.ContrastRatio(cmd.Bg)
		if !ok || r < ratio {
			ratio = r
			ok = true
		}
	}
	return ratio, ok
}

func (g *Gate) record(name string, elapsed time.Duration, budget Budget) {
	g.lastTime[name] = elapsed
	g.overrun[name] = elapsed.Milliseconds() > budget.TotalMS
}

func (g *Gate) logFailure(name string, v Verification) {
	evt := g.log.Warn().Str("brick", name).Int("failed_count", len(v.Failed))
	for _, f := range v.Failed {
		evt = evt.Str("reason", f.Reason)
	}
	evt.Msg("brick verification failed, widget not painted")
}

// paintDiagnostic draws a minimal error artifact: a bordered rect filled
// with a warning color. It deliberately avoids text layout so it cannot
// itself fail another brick's contract.
func (g *Gate) paintDiagnostic(bounds geometry.Rect, c canvas.Canvas) {
	warn := cellbuffer.Color{R: 0.8, G: 0.1, B: 0.1, A: 1}
	c.FillRect(bounds.Pos.Row, bounds.Pos.Col, bounds.Size.Width, bounds.Size.Height, warn)
	c.StrokeRect(bounds.Pos.Row, bounds.Pos.Col, bounds.Size.Width, bounds.Size.Height, cellbuffer.White)
}

// LastElapsed returns the most recently recorded verify+paint duration for
// the named brick, for diagnostics and tests.
func (g *Gate) LastElapsed(name string) (time.Duration, bool) {
	d, ok := g.lastTime[name]
	return d, ok
}

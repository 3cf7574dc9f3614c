package canvas

import (
	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/geometry"
)

// CommandKind identifies the drawing operation a DrawCommand captures.
type CommandKind int

const (
	CmdFillRect CommandKind = iota
	CmdStrokeRect
	CmdDrawText
	CmdDrawLine
	CmdFillCircle
	CmdStrokeCircle
	CmdFillArc
	CmdDrawPath
	CmdFillPolygon
)

// DrawCommand is a recorded call to the Canvas interface, captured verbatim
// for assertions in tests and for non-terminal backends (e.g. rendering to
// an HTML snapshot for Brick diagnostics).
type DrawCommand struct {
	Kind             CommandKind
	Row, Col         int
	Width, Height    int
	Row1, Col1       int
	Radius           int
	StartDeg, EndDeg float64
	Text             string
	Fg, Bg           cellbuffer.Color
	Attrs            cellbuffer.Attrs
	Points           []Point
	Clip             geometry.Rect
	ActiveTransform  Transform2D
}

// RecordingCanvas captures every draw call instead of painting, for unit
// tests that assert on exactly what a widget drew, and as a Canvas
// implementation a non-terminal renderer can replay against any surface.
type RecordingCanvas struct {
	Commands   []DrawCommand
	clipStack  []geometry.Rect
	transforms []Transform2D
}

// NewRecordingCanvas creates a recording canvas clipped to (width, height).
func NewRecordingCanvas(width, height int) *RecordingCanvas {
	return &RecordingCanvas{clipStack: []geometry.Rect{geometry.NewRect(0, 0, width, height)}}
}

func (r *RecordingCanvas) currentClip() geometry.Rect {
	return r.clipStack[len(r.clipStack)-1]
}

func (r *RecordingCanvas) currentTransform() Transform2D {
	if len(r.transforms) == 0 {
		return Identity
	}
	return r.transforms[len(r.transforms)-1]
}

func (r *RecordingCanvas) record(cmd DrawCommand) {
	cmd.Clip = r.currentClip()
	cmd.ActiveTransform = r.currentTransform()
	r.Commands = append(r.Commands, cmd)
}

func (r *RecordingCanvas) FillRect(row, col, width, height int, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdFillRect, Row: row, Col: col, Width: width, Height: height, Bg: color})
}

func (r *RecordingCanvas) StrokeRect(row, col, width, height int, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdStrokeRect, Row: row, Col: col, Width: width, Height: height, Fg: color})
}

func (r *RecordingCanvas) DrawText(row, col int, text string, fg, bg cellbuffer.Color, attrs cellbuffer.Attrs) {
	r.record(DrawCommand{Kind: CmdDrawText, Row: row, Col: col, Text: text, Fg: fg, Bg: bg, Attrs: attrs})
}

func (r *RecordingCanvas) DrawLine(row0, col0, row1, col1 int, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdDrawLine, Row: row0, Col: col0, Row1: row1, Col1: col1, Fg: color})
}

func (r *RecordingCanvas) FillCircle(centerRow, centerCol, radius int, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdFillCircle, Row: centerRow, Col: centerCol, Radius: radius, Bg: color})
}

func (r *RecordingCanvas) StrokeCircle(centerRow, centerCol, radius int, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdStrokeCircle, Row: centerRow, Col: centerCol, Radius: radius, Fg: color})
}

func (r *RecordingCanvas) FillArc(centerRow, centerCol, radius int, startDeg, endDeg float64, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdFillArc, Row: centerRow, Col: centerCol, Radius: radius, StartDeg: startDeg, EndDeg: endDeg, Bg: color})
}

func (r *RecordingCanvas) DrawPath(points []Point, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdDrawPath, Points: points, Fg: color})
}

func (r *RecordingCanvas) FillPolygon(points []Point, color cellbuffer.Color) {
	r.record(DrawCommand{Kind: CmdFillPolygon, Points: points, Bg: color})
}

func (r *RecordingCanvas) PushClip(row, col, width, height int) {
	next := geometry.NewRect(row, col, width, height)
	if clipped, ok := r.currentClip().Intersect(next); ok {
		r.clipStack = append(r.clipStack, clipped)
	} else {
		r.clipStack = append(r.clipStack, geometry.Rect{Pos: geometry.Position{Row: row, Col: col}})
	}
}

func (r *RecordingCanvas) PopClip() error {
	if len(r.clipStack) <= 1 {
		return ErrUnbalancedPop
	}
	r.clipStack = r.clipStack[:len(r.clipStack)-1]
	return nil
}

func (r *RecordingCanvas) PushTransform(t Transform2D) {
	r.transforms = append(r.transforms, t)
}

func (r *RecordingCanvas) PopTransform() error {
	if len(r.transforms) == 0 {
		return ErrUnbalancedPop
	}
	r.transforms = r.transforms[:len(r.transforms)-1]
	return nil
}

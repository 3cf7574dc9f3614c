// Package canvas defines the abstract painter surface widgets draw through:
// rectangles, text, lines, and clip/transform stacks, independent of
// whether the backend is a real terminal or a recording used by tests.
package canvas

import "github.com/paiml/presentar-sub007/cellbuffer"

// Transform2D is a 2D affine transform applied to subsequent draw calls.
// TerminalCanvas keeps a transform stack but does not apply it to its
// output; RecordingCanvas records the active transform with each command.
type Transform2D struct {
	TranslateRow, TranslateCol float64
	ScaleRow, ScaleCol         float64
}

// Identity is the no-op transform.
var Identity = Transform2D{ScaleRow: 1, ScaleCol: 1}

// Canvas is the abstract drawing surface every widget paints through.
type Canvas interface {
	FillRect(row, col, width, height int, color cellbuffer.Color)
	StrokeRect(row, col, width, height int, color cellbuffer.Color)
	DrawText(row, col int, text string, fg, bg cellbuffer.Color, attrs cellbuffer.Attrs)
	DrawLine(row0, col0, row1, col1 int, color cellbuffer.Color)
	FillCircle(centerRow, centerCol, radius int, color cellbuffer.Color)
	StrokeCircle(centerRow, centerCol, radius int, color cellbuffer.Color)
	FillArc(centerRow, centerCol, radius int, startDeg, endDeg float64, color cellbuffer.Color)
	DrawPath(points []Point, color cellbuffer.Color)
	FillPolygon(points []Point, color cellbuffer.Color)

	PushClip(row, col, width, height int)
	PopClip() error

	PushTransform(t Transform2D)
	PopTransform() error
}

// Point is a coordinate used by path and polygon drawing.
type Point struct {
	Row, Col int
}

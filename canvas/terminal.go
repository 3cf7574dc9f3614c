package canvas

import (
	"errors"
	"math"

	"github.com/rivo/uniseg"

	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/geometry"
)

// ErrUnbalancedPop is returned by PopClip/PopTransform when called without a
// matching push.
var ErrUnbalancedPop = errors.New("canvas: pop without matching push")

// TerminalCanvas paints directly into a cellbuffer.Buffer, respecting a
// LIFO clip-rect stack. Transforms are tracked for API symmetry with
// RecordingCanvas but are not applied to terminal output, since cells are
// always addressed in integer row/column space.
type TerminalCanvas struct {
	buf        *cellbuffer.Buffer
	clipStack  []geometry.Rect
	transforms []Transform2D
}

// NewTerminalCanvas wraps buf for direct painting.
func NewTerminalCanvas(buf *cellbuffer.Buffer) *TerminalCanvas {
	return &TerminalCanvas{
		buf:       buf,
		clipStack: []geometry.Rect{geometry.NewRect(0, 0, buf.Width(), buf.Height())},
	}
}

func (c *TerminalCanvas) clip() geometry.Rect {
	return c.clipStack[len(c.clipStack)-1]
}

func (c *TerminalCanvas) visible(row, col int) bool {
	return c.clip().Contains(geometry.Position{Row: row, Col: col})
}

// FillRect paints a solid rectangle of blank, colored cells.
func (c *TerminalCanvas) FillRect(row, col, width, height int, color cellbuffer.Color) {
	for r := row; r < row+height; r++ {
		for cc := col; cc < col+width; cc++ {
			if !c.visible(r, cc) {
				continue
			}
			c.buf.Set(r, cc, cellbuffer.NewCell(" ", cellbuffer.Color{}, color, 0))
		}
	}
}

// StrokeRect paints only the rectangle's border cells.
func (c *TerminalCanvas) StrokeRect(row, col, width, height int, color cellbuffer.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	for cc := col; cc < col+width; cc++ {
		c.paintBorderCell(row, cc, color)
		c.paintBorderCell(row+height-1, cc, color)
	}
	for r := row; r < row+height; r++ {
		c.paintBorderCell(r, col, color)
		c.paintBorderCell(r, col+width-1, color)
	}
}

func (c *TerminalCanvas) paintBorderCell(row, col int, color cellbuffer.Color) {
	if !c.visible(row, col) {
		return
	}
	c.buf.Set(row, col, cellbuffer.NewCell(" ", cellbuffer.Color{}, color, 0))
}

// DrawText writes text starting at (row, col), truncated at the clip
// rect's right edge.
func (c *TerminalCanvas) DrawText(row, col int, text string, fg, bg cellbuffer.Color, attrs cellbuffer.Attrs) {
	if !c.visible(row, col) {
		return
	}
	right := c.clip().Right()
	limited := c.buf.Width()
	if right < limited {
		limited = right
	}
	avail := limited - col
	if avail <= 0 {
		return
	}
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		cell := cellbuffer.NewCell(cluster, fg, bg, attrs)
		if cell.Width == 0 {
			continue
		}
		if col+cell.Width > limited {
			break
		}
		c.buf.Set(row, col, cell)
		col += cell.Width
	}
}

// DrawLine paints a straight line between two points of any slope using
// Bresenham's algorithm, one cell per step along the major axis.
func (c *TerminalCanvas) DrawLine(row0, col0, row1, col1 int, color cellbuffer.Color) {
	dr := abs(row1 - row0)
	dc := abs(col1 - col0)
	sr := sign(row1 - row0)
	sc := sign(col1 - col0)
	err := dr - dc

	r, cc := row0, col0
	for {
		c.paintBorderCell(r, cc, color)
		if r == row1 && cc == col1 {
			break
		}
		e2 := 2 * err
		if e2 > -dc {
			err -= dc
			r += sr
		}
		if e2 < dr {
			err += dr
			cc += sc
		}
	}
}

// FillCircle paints a filled circle using a midpoint-style scan.
func (c *TerminalCanvas) FillCircle(centerRow, centerCol, radius int, color cellbuffer.Color) {
	for r := -radius; r <= radius; r++ {
		for cc := -radius; cc <= radius; cc++ {
			if r*r+cc*cc <= radius*radius {
				c.paintBorderCell(centerRow+r, centerCol+cc, color)
			}
		}
	}
}

// StrokeCircle paints only the circle's perimeter.
func (c *TerminalCanvas) StrokeCircle(centerRow, centerCol, radius int, color cellbuffer.Color) {
	const steps = 360
	for deg := 0; deg < steps; deg++ {
		rad := float64(deg) * math.Pi / 180
		r := centerRow + int(math.Round(float64(radius)*math.Sin(rad)))
		cc := centerCol + int(math.Round(float64(radius)*math.Cos(rad)))
		c.paintBorderCell(r, cc, color)
	}
}

// FillArc paints the filled wedge of a circle between startDeg and endDeg.
func (c *TerminalCanvas) FillArc(centerRow, centerCol, radius int, startDeg, endDeg float64, color cellbuffer.Color) {
	for r := -radius; r <= radius; r++ {
		for cc := -radius; cc <= radius; cc++ {
			if r*r+cc*cc > radius*radius {
				continue
			}
			angle := math.Atan2(float64(r), float64(cc)) * 180 / math.Pi
			if angle < 0 {
				angle += 360
			}
			if angle >= startDeg && angle <= endDeg {
				c.paintBorderCell(centerRow+r, centerCol+cc, color)
			}
		}
	}
}

// DrawPath paints connected line segments through points in order.
func (c *TerminalCanvas) DrawPath(points []Point, color cellbuffer.Color) {
	for i := 1; i < len(points); i++ {
		c.DrawLine(points[i-1].Row, points[i-1].Col, points[i].Row, points[i].Col, color)
	}
}

// FillPolygon paints the closed outline formed by points; interior fill is
// not rasterized in cell space, matching the outline-only scope widgets
// actually need (sparkline/heatmap fills use FillRect instead).
func (c *TerminalCanvas) FillPolygon(points []Point, color cellbuffer.Color) {
	if len(points) < 2 {
		return
	}
	c.DrawPath(points, color)
	c.DrawLine(points[len(points)-1].Row, points[len(points)-1].Col, points[0].Row, points[0].Col, color)
}

// PushClip intersects a new clip rect with the current one and pushes it.
func (c *TerminalCanvas) PushClip(row, col, width, height int) {
	next := geometry.NewRect(row, col, width, height)
	if current, ok := c.clip().Intersect(next); ok {
		c.clipStack = append(c.clipStack, current)
	} else {
		c.clipStack = append(c.clipStack, geometry.Rect{Pos: geometry.Position{Row: row, Col: col}})
	}
}

// PopClip restores the previous clip rect.
func (c *TerminalCanvas) PopClip() error {
	if len(c.clipStack) <= 1 {
		return ErrUnbalancedPop
	}
	c.clipStack = c.clipStack[:len(c.clipStack)-1]
	return nil
}

// PushTransform records a transform; terminal output ignores it.
func (c *TerminalCanvas) PushTransform(t Transform2D) {
	c.transforms = append(c.transforms, t)
}

// PopTransform pops the most recently pushed transform.
func (c *TerminalCanvas) PopTransform() error {
	if len(c.transforms) == 0 {
		return ErrUnbalancedPop
	}
	c.transforms = c.transforms[:len(c.transforms)-1]
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

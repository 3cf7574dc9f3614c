// Package cellbuffer holds the double-buffered grid of terminal cells that
// every widget paints into, plus the Color and Attrs value types cells carry.
package cellbuffer

import (
	"strings"

	"github.com/paiml/presentar-sub007/geometry"
	"github.com/rivo/uniseg"
)

// Buffer is a row-major grid of cells with per-row dirty tracking, so the
// DiffRenderer only has to re-scan rows that actually changed since the
// last flush.
type Buffer struct {
	width  int
	height int
	cells  []Cell
	dirty  []bool
}

// NewBuffer creates a buffer of the given size, filled with blank cells and
// marked entirely dirty (a fresh buffer always needs a first full paint).
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
		dirty:  make([]bool, height),
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in cells.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions as a geometry.Size.
func (b *Buffer) Size() geometry.Size { return geometry.Size{Width: b.width, Height: b.height} }

func (b *Buffer) index(row, col int) (int, bool) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, false
	}
	return row*b.width + col, true
}

// Get returns the cell at (row, col), or an empty cell if out of bounds.
func (b *Buffer) Get(row, col int) Cell {
	i, ok := b.index(row, col)
	if !ok {
		return Empty
	}
	return b.cells[i]
}

// Set writes a cell at (row, col). Out-of-bounds writes are a no-op. If the
// cell is double-wide, the following column is overwritten with a
// continuation sentinel; writes that would place a double-wide cell in the
// last column are dropped entirely rather than truncated. A write that
// leaves the cell (and its continuation) unchanged does not mark the row
// dirty.
func (b *Buffer) Set(row, col int, cell Cell) {
	i, ok := b.index(row, col)
	if !ok {
		return
	}
	if cell.Width == 2 {
		if col+1 >= b.width {
			return
		}
		cont := continuationCell(cell.Fg, cell.Bg, cell.Attrs)
		if b.cells[i].Equal(cell) && b.cells[i+1].Equal(cont) {
			return
		}
		b.cells[i] = cell
		b.cells[i+1] = cont
	} else {
		if b.cells[i].Equal(cell) {
			return
		}
		b.cells[i] = cell
	}
	b.markRowDirty(row)
}

// Clear resets every cell to blank and marks every row dirty.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = Empty
	}
	b.MarkAllDirty()
}

// IsDirty reports whether row has changed since the last ClearDirty.
func (b *Buffer) IsDirty(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	return b.dirty[row]
}

func (b *Buffer) markRowDirty(row int) {
	if row >= 0 && row < b.height {
		b.dirty[row] = true
	}
}

// MarkAllDirty flags every row as needing a redraw, used after a resize or
// a full-screen invalidation.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
}

// ClearDirty clears every row's dirty flag, called by the renderer once it
// has flushed the current frame.
func (b *Buffer) ClearDirty() {
	for i := range b.dirty {
		b.dirty[i] = false
	}
}

// DirtyRows returns the indices of rows currently marked dirty.
func (b *Buffer) DirtyRows() []int {
	rows := make([]int, 0, b.height)
	for i, d := range b.dirty {
		if d {
			rows = append(rows, i)
		}
	}
	return rows
}

// SetString writes text starting at (row, col) using the given foreground,
// background, and attributes, stopping at the buffer's right edge. Returns
// the number of columns written.
func (b *Buffer) SetString(row, col int, text string, fg, bg Color, attrs Attrs) int {
	if row < 0 || row >= b.height || col < 0 {
		return 0
	}
	state := -1
	written := 0
	for text != "" {
		if col >= b.width {
			break
		}
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		if cluster == "" {
			continue
		}
		cell := NewCell(cluster, fg, bg, attrs)
		if cell.Width == 0 {
			continue
		}
		if col+cell.Width > b.width {
			break
		}
		b.Set(row, col, cell)
		col += cell.Width
		written += cell.Width
	}
	return written
}

// Row returns a copy of the cells in row y.
func (b *Buffer) Row(y int) []Cell {
	if y < 0 || y >= b.height {
		return nil
	}
	row := make([]Cell, b.width)
	copy(row, b.cells[y*b.width:(y+1)*b.width])
	return row
}

// Resize produces a new buffer of the given dimensions, copying over the
// overlapping region of content and marking the whole new buffer dirty.
func (b *Buffer) Resize(width, height int) *Buffer {
	out := NewBuffer(width, height)
	minW := min(b.width, width)
	minH := min(b.height, height)
	for y := 0; y < minH; y++ {
		copy(out.cells[y*width:y*width+minW], b.cells[y*b.width:y*b.width+minW])
	}
	return out
}

// String renders the buffer as plain text, for debugging and tests.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.Get(y, x)
			if c.IsContinuation() {
				continue
			}
			if c.Cluster == "" {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(c.Cluster)
			}
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

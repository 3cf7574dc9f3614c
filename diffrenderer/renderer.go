// Package diffrenderer turns two successive cellbuffer.Buffer frames into
// the minimal ANSI byte stream that transforms one into the other, tracking
// cursor position and SGR state across flushes so it never emits a
// redundant escape sequence.
package diffrenderer

import (
	"bufio"
	"io"

	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/colormode"
	"github.com/paiml/presentar-sub007/diffrenderer/ansi"
)

// fullRedrawThreshold is the fraction of dirty rows past which a full
// screen repaint (in row order, skipping unchanged cells) is cheaper than
// tracking individual runs.
const fullRedrawThreshold = 0.75

// Renderer owns the previously-painted frame (its shadow) plus the
// terminal's current cursor position and SGR state, and emits only the
// bytes needed to bring the terminal to match a new frame.
type Renderer struct {
	mode   colormode.Mode
	out    *bufio.Writer
	shadow *cellbuffer.Buffer

	cursorRow, cursorCol int
	cursorValid          bool
	curFg, curBg         cellbuffer.Color
	curAttrs             cellbuffer.Attrs
	styleValid           bool
	forceAll             bool

	cellsWritten int
	flushCount   int
	cursorMoves  int
	bytesWritten int
}

// New creates a renderer writing to out in the given color mode. The
// shadow state is empty until the first Flush.
func New(out io.Writer, mode colormode.Mode) *Renderer {
	return &Renderer{mode: mode, out: bufio.NewWriter(out)}
}

// SetMode updates the color mode used for subsequent flushes.
func (r *Renderer) SetMode(mode colormode.Mode) { r.mode = mode }

// CellsWritten returns the cumulative number of cells written, for metrics.
func (r *Renderer) CellsWritten() int { return r.cellsWritten }

// FlushCount returns the number of completed Flush calls.
func (r *Renderer) FlushCount() int { return r.flushCount }

// CursorMoves returns the cumulative number of cursor-repositioning escape
// sequences emitted, for metrics. A contiguous run of cells writes at most
// one; scattered writes each cost one.
func (r *Renderer) CursorMoves() int { return r.cursorMoves }

// BytesWritten returns the cumulative number of bytes written to out
// (escape sequences and cell clusters alike), for metrics.
func (r *Renderer) BytesWritten() int { return r.bytesWritten }

// write writes s to out and accounts it against bytesWritten, so every
// escape sequence and cluster funnels through one counted path.
func (r *Renderer) write(s string) error {
	_, err := r.out.WriteString(s)
	r.bytesWritten += len(s)
	return err
}

// Clear discards the shadow frame and resets cursor/style tracking, forcing
// the next Flush to repaint everything. Called after a resize, since the
// old shadow no longer corresponds to the new buffer's dimensions.
func (r *Renderer) Clear() {
	r.shadow = nil
	r.cursorValid = false
	r.styleValid = false
	r.forceAll = true
}

// Flush compares buf against the renderer's shadow of the last flushed
// frame and writes the minimal ANSI sequence needed to make the terminal
// match, then updates the shadow and clears buf's dirty flags.
func (r *Renderer) Flush(buf *cellbuffer.Buffer) error {
	if r.shadow == nil || r.shadow.Width() != buf.Width() || r.shadow.Height() != buf.Height() {
		r.shadow = cellbuffer.NewBuffer(buf.Width(), buf.Height())
		buf.MarkAllDirty()
	}

	dirtyRows := buf.DirtyRows()
	if len(dirtyRows) == 0 {
		return r.out.Flush()
	}

	if float64(len(dirtyRows))/float64(max(1, buf.Height())) >= fullRedrawThreshold {
		if err := r.writeFullRows(buf, allRows(buf.Height())); err != nil {
			return err
		}
	} else {
		if err := r.writeFullRows(buf, dirtyRows); err != nil {
			return err
		}
	}

	r.copyShadow(buf, dirtyRows)
	r.forceAll = false
	buf.ClearDirty()
	r.flushCount++
	return r.out.Flush()
}

func allRows(height int) []int {
	rows := make([]int, height)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// writeFullRows emits runs of changed cells for each given row.
func (r *Renderer) writeFullRows(buf *cellbuffer.Buffer, rows []int) error {
	for _, row := range rows {
		col := 0
		width := buf.Width()
		for col < width {
			cell := buf.Get(row, col)
			if cell.IsContinuation() {
				col++
				continue
			}
			if r.unchanged(row, col, cell) {
				col += max(1, cell.Width)
				continue
			}
			runEnd := col
			for runEnd < width {
				c := buf.Get(row, runEnd)
				if c.IsContinuation() {
					runEnd++
					continue
				}
				if r.unchanged(row, runEnd, c) {
					break
				}
				runEnd += max(1, c.Width)
			}
			if err := r.writeRun(buf, row, col, runEnd); err != nil {
				return err
			}
			col = runEnd
		}
	}
	return nil
}

func (r *Renderer) unchanged(row, col int, cell cellbuffer.Cell) bool {
	if r.shadow == nil || r.forceAll {
		return false
	}
	return r.shadow.Get(row, col).Equal(cell)
}

// writeRun paints buf's cells in [startCol, endCol) of row, moving the
// cursor only if it isn't already the successor of the last write.
func (r *Renderer) writeRun(buf *cellbuffer.Buffer, row, startCol, endCol int) error {
	if !r.cursorValid || r.cursorRow != row || r.cursorCol != startCol {
		if err := r.write(ansi.MoveCursor(row, startCol)); err != nil {
			return err
		}
		r.cursorMoves++
	}

	col := startCol
	for col < endCol {
		cell := buf.Get(row, col)
		if cell.IsContinuation() {
			col++
			continue
		}
		if err := r.writeStyle(cell.Fg, cell.Bg, cell.Attrs); err != nil {
			return err
		}
		if err := r.write(cell.Cluster); err != nil {
			return err
		}
		r.cellsWritten++
		col += max(1, cell.Width)
	}

	r.cursorRow, r.cursorCol = row, col
	r.cursorValid = true
	return nil
}

func (r *Renderer) writeStyle(fg, bg cellbuffer.Color, attrs cellbuffer.Attrs) error {
	// Colors are compared after quantization to the active mode, so two
	// colors that map to the same palette entry never re-emit SGR.
	same := func(a, b cellbuffer.Color) bool {
		ar, ag, ab := a.RGB8()
		br, bgr, bb := b.RGB8()
		switch r.mode {
		case colormode.TrueColor:
			return a.Equal(b)
		case colormode.Ansi256:
			return colormode.Quantize256(ar, ag, ab) == colormode.Quantize256(br, bgr, bb)
		case colormode.Ansi16:
			return colormode.Quantize16(ar, ag, ab) == colormode.Quantize16(br, bgr, bb)
		}
		return true
	}
	if r.styleValid && same(fg, r.curFg) && same(bg, r.curBg) && attrs == r.curAttrs {
		return nil
	}

	// A style that drops attributes present in the current SGR state can't
	// be expressed with individual "no-X" resets reliably across all
	// terminals, so fall back to a full reset before reapplying. The same
	// reset is emitted when no SGR state is known yet (first write, or
	// after Clear), so colors and attributes are re-emitted unconditionally.
	needsFullReset := !r.styleValid || (r.curAttrs&^attrs) != 0
	if needsFullReset {
		if err := r.write(ansi.Reset); err != nil {
			return err
		}
	}

	if !same(fg, r.curFg) || needsFullReset {
		if err := r.writeColor(fg, true); err != nil {
			return err
		}
	}
	if !same(bg, r.curBg) || needsFullReset {
		if err := r.writeColor(bg, false); err != nil {
			return err
		}
	}

	newAttrs := attrs
	if !needsFullReset {
		newAttrs = attrs &^ r.curAttrs
	}
	if err := r.writeAttrs(newAttrs); err != nil {
		return err
	}

	r.curFg, r.curBg, r.curAttrs = fg, bg, attrs
	r.styleValid = true
	return nil
}

func (r *Renderer) writeColor(c cellbuffer.Color, foreground bool) error {
	rr, gg, bb := c.RGB8()
	var seq string
	switch r.mode {
	case colormode.TrueColor:
		if foreground {
			seq = ansi.SetFgRGB(rr, gg, bb)
		} else {
			seq = ansi.SetBgRGB(rr, gg, bb)
		}
	case colormode.Ansi256:
		idx := colormode.Quantize256(rr, gg, bb)
		if foreground {
			seq = ansi.SetFg256(idx)
		} else {
			seq = ansi.SetBg256(idx)
		}
	case colormode.Ansi16:
		idx := colormode.Quantize16(rr, gg, bb)
		if foreground {
			seq = ansi.SetFg16(idx)
		} else {
			seq = ansi.SetBg16(idx)
		}
	default:
		return nil
	}
	return r.write(seq)
}

func (r *Renderer) writeAttrs(attrs cellbuffer.Attrs) error {
	pairs := []struct {
		flag cellbuffer.Attrs
		seq  string
	}{
		{cellbuffer.Bold, ansi.Bold},
		{cellbuffer.Dim, ansi.Dim},
		{cellbuffer.Italic, ansi.Italic},
		{cellbuffer.Underline, ansi.Underline},
		{cellbuffer.Blink, ansi.Blink},
		{cellbuffer.Reverse, ansi.Reverse},
		{cellbuffer.Hidden, ansi.Hidden},
		{cellbuffer.Strike, ansi.Strike},
	}
	for _, p := range pairs {
		if attrs.Has(p.flag) {
			if err := r.write(p.seq); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) copyShadow(buf *cellbuffer.Buffer, rows []int) {
	for _, row := range rows {
		for col := 0; col < buf.Width(); col++ {
			r.shadow.Set(row, col, buf.Get(row, col))
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

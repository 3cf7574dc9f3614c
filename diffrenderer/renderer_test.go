package diffrenderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paiml/presentar-sub007/cellbuffer"
	"github.com/paiml/presentar-sub007/colormode"
)

func TestFlushFirstFrameWritesAllNonEmptyCells(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)

	buf := cellbuffer.NewBuffer(5, 1)
	buf.SetString(0, 0, "hi", cellbuffer.Red, cellbuffer.Color{}, 0)

	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "h") || !strings.Contains(s, "i") {
		t.Fatalf("expected text in output, got %q", s)
	}
}

func TestFlushSecondFrameOnlyWritesChangedRun(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)

	buf := cellbuffer.NewBuffer(5, 1)
	buf.SetString(0, 0, "hello", cellbuffer.Color{}, cellbuffer.Color{}, 0)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	out.Reset()

	buf.Set(0, 0, cellbuffer.NewCell("H", cellbuffer.Color{}, cellbuffer.Color{}, 0))
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	s := out.String()
	if !strings.Contains(s, "H") {
		t.Fatalf("expected changed cell in output, got %q", s)
	}
	if strings.Contains(s, "ello") {
		t.Fatalf("unchanged run should not be rewritten, got %q", s)
	}
}

func TestFlushNoChangesWritesNothing(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)
	buf := cellbuffer.NewBuffer(3, 1)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	out.Reset()
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output for unchanged buffer, got %q", out.String())
	}
}

func TestClearForcesFullRepaint(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)
	buf := cellbuffer.NewBuffer(3, 1)
	buf.SetString(0, 0, "x", cellbuffer.Color{}, cellbuffer.Color{}, 0)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	buf.ClearDirty()
	r.Clear()
	out.Reset()
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	if out.Len() == 0 {
		t.Fatal("expected repaint after Clear")
	}
}

func TestCursorMovesOnceForContiguousRun(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)
	buf := cellbuffer.NewBuffer(5, 1)
	buf.SetString(0, 0, "ab", cellbuffer.Color{}, cellbuffer.Color{}, 0)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	if r.CursorMoves() != 1 {
		t.Fatalf("expected exactly one cursor move for a contiguous run, got %d", r.CursorMoves())
	}
}

func TestCursorMovesTwiceForScatteredWrites(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)
	buf := cellbuffer.NewBuffer(5, 1)
	buf.SetString(0, 0, "a", cellbuffer.Color{}, cellbuffer.Color{}, 0)
	buf.SetString(0, 4, "z", cellbuffer.Color{}, cellbuffer.Color{}, 0)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	if r.CursorMoves() != 2 {
		t.Fatalf("expected two cursor moves for two scattered writes, got %d", r.CursorMoves())
	}
}

func TestBytesWrittenAccumulatesAcrossFlushes(t *testing.T) {
	var out bytes.Buffer
	r := New(&out, colormode.TrueColor)
	buf := cellbuffer.NewBuffer(5, 1)
	buf.SetString(0, 0, "hi", cellbuffer.Red, cellbuffer.Color{}, 0)
	if err := r.Flush(buf); err != nil {
		t.Fatal(err)
	}
	if r.BytesWritten() == 0 {
		t.Fatal("expected BytesWritten to reflect the escape sequences and clusters written")
	}
	if r.BytesWritten() != out.Len() {
		t.Fatalf("BytesWritten (%d) should match bytes actually written to out (%d)", r.BytesWritten(), out.Len())
	}
}

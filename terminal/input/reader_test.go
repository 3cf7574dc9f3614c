package input_test

import (
	"strings"
	"testing"

	"github.com/paiml/presentar-sub007/terminal/input"
	"github.com/paiml/presentar-sub007/widget"
)

func TestReaderDecodesSingleRune(t *testing.T) {
	r := input.NewReader(strings.NewReader("a"))
	ev, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ev.Kind != widget.EventKeyDown || ev.Key.Rune != 'a' {
		t.Fatalf("got %+v, want rune 'a'", ev)
	}
}

func TestReaderDecodesMultipleRunes(t *testing.T) {
	r := input.NewReader(strings.NewReader("abc"))
	want := []rune{'a', 'b', 'c'}
	for _, w := range want {
		ev, err := r.Read()
		if err != nil {
			t.Fatalf("Read failed: %v", err)
		}
		if ev.Key.Rune != w {
			t.Fatalf("got %c, want %c", ev.Key.Rune, w)
		}
	}
}

func TestReaderDecodesArrowKey(t *testing.T) {
	r := input.NewReader(strings.NewReader("\x1B[A"))
	ev, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ev.Key.Name != widget.KeyUp {
		t.Fatalf("got %v, want KeyUp", ev.Key.Name)
	}
}

func TestReaderDecodesEnter(t *testing.T) {
	r := input.NewReader(strings.NewReader("\r"))
	ev, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ev.Key.Name != widget.KeyEnter {
		t.Fatalf("got %v, want KeyEnter", ev.Key.Name)
	}
}

func TestReaderDecodesSpace(t *testing.T) {
	r := input.NewReader(strings.NewReader(" "))
	ev, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if ev.Key.Rune != ' ' {
		t.Fatalf("got %+v, want space", ev)
	}
}

func TestReaderDecodesCtrlLetter(t *testing.T) {
	r := input.NewReader(strings.NewReader("\x03"))
	ev, err := r.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ev.Key.Ctrl || ev.Key.Rune != 'c' {
		t.Fatalf("got %+v, want ctrl-c", ev)
	}
}

func TestReaderPollReturnsFalseOnEOF(t *testing.T) {
	r := input.NewReader(strings.NewReader(""))
	_, ok := r.Poll(0)
	if ok {
		t.Fatal("expected Poll to return false on EOF")
	}
}

package ansi

import "testing"

func TestMoveCursorIsOneIndexed(t *testing.T) {
	if got := MoveCursor(0, 0); got != CSI+"1;1H" {
		t.Fatalf("got %q", got)
	}
	if got := MoveCursor(4, 9); got != CSI+"5;10H" {
		t.Fatalf("got %q", got)
	}
}

func TestSetFg16Bright(t *testing.T) {
	if got := SetFg16(9); got != CSI+"91m" {
		t.Fatalf("got %q", got)
	}
	if got := SetFg16(1); got != CSI+"31m" {
		t.Fatalf("got %q", got)
	}
}

func TestTruecolorSequences(t *testing.T) {
	if got := SetFgRGB(1, 2, 3); got != CSI+"38;2;1;2;3m" {
		t.Fatalf("got %q", got)
	}
	if got := SetBgRGB(1, 2, 3); got != CSI+"48;2;1;2;3m" {
		t.Fatalf("got %q", got)
	}
}

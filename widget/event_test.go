package widget

import "testing"

func TestKeyCarriesRuneForPrintable(t *testing.T) {
	k := Key{Rune: 'a'}
	if k.Name != KeyNone {
		t.Fatalf("expected KeyNone for printable key, got %v", k.Name)
	}
}

func TestKeyCarriesNameForSpecial(t *testing.T) {
	k := Key{Name: KeyEnter, Ctrl: true}
	if k.Rune != 0 {
		t.Fatalf("expected zero rune for named key, got %q", k.Rune)
	}
	if !k.Ctrl {
		t.Fatal("expected Ctrl to survive construction")
	}
}

func TestMessageNilMeansUnhandled(t *testing.T) {
	var msg *Message
	if msg != nil {
		t.Fatal("zero value Message pointer should be nil")
	}
}

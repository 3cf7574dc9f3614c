package colormode

import "testing"

type fakeEnv map[string]string

func (f fakeEnv) Get(key string) string { return f[key] }

func TestDetectNoColorWins(t *testing.T) {
	env := fakeEnv{"NO_COLOR": "1", "COLORTERM": "truecolor"}
	if got := DetectWith(env); got != Monochrome {
		t.Fatalf("got %v, want Monochrome", got)
	}
}

func TestDetectForceColorLevels(t *testing.T) {
	cases := map[string]Mode{"0": Monochrome, "1": Ansi16, "2": Ansi256, "3": TrueColor}
	for fc, want := range cases {
		env := fakeEnv{"FORCE_COLOR": fc}
		if got := DetectWith(env); got != want {
			t.Errorf("FORCE_COLOR=%s: got %v, want %v", fc, got, want)
		}
	}
}

func TestDetectColortermTruecolor(t *testing.T) {
	env := fakeEnv{"COLORTERM": "truecolor", "TERM": "xterm"}
	if got := DetectWith(env); got != TrueColor {
		t.Fatalf("got %v, want TrueColor", got)
	}
}

func TestDetectTermProgram(t *testing.T) {
	if got := DetectWith(fakeEnv{"TERM_PROGRAM": "iTerm.app"}); got != TrueColor {
		t.Fatalf("got %v, want TrueColor", got)
	}
	if got := DetectWith(fakeEnv{"TERM_PROGRAM": "Apple_Terminal"}); got != Ansi256 {
		t.Fatalf("got %v, want Ansi256", got)
	}
}

func TestDetectTermFallback(t *testing.T) {
	if got := DetectWith(fakeEnv{"TERM": "xterm-256color"}); got != Ansi256 {
		t.Fatalf("got %v, want Ansi256", got)
	}
	if got := DetectWith(fakeEnv{"TERM": "xterm"}); got != Ansi16 {
		t.Fatalf("got %v, want Ansi16", got)
	}
	if got := DetectWith(fakeEnv{"TERM": "dumb"}); got != Monochrome {
		t.Fatalf("got %v, want Monochrome", got)
	}
	if got := DetectWith(fakeEnv{}); got != Monochrome {
		t.Fatalf("got %v, want Monochrome for empty TERM", got)
	}
}

func TestQuantize256Grayscale(t *testing.T) {
	if got := Quantize256(10, 10, 10); got != 232 {
		t.Fatalf("near-black got %d, want 232", got)
	}
	if got := Quantize256(250, 250, 250); got != 231 {
		t.Fatalf("near-white got %d, want 231", got)
	}
}

func TestQuantize256Cube(t *testing.T) {
	got := Quantize256(255, 0, 0)
	if got < 16 || got > 231 {
		t.Fatalf("pure red got %d, expected within cube range", got)
	}
}

func TestQuantize16ExactMatches(t *testing.T) {
	if got := Quantize16(0, 0, 0); got != 0 {
		t.Fatalf("black got %d, want 0", got)
	}
	if got := Quantize16(255, 255, 255); got != 15 {
		t.Fatalf("white got %d, want 15", got)
	}
}

func TestModeString(t *testing.T) {
	if Ansi256.String() != "ansi256" {
		t.Fatalf("unexpected String(): %s", Ansi256.String())
	}
}

package infrastructure

import (
	"testing"

	"github.com/paiml/presentar-sub007/terminal/infrastructure/unix"
)

// BenchmarkANSI_SetCursorPosition benchmarks ANSI cursor positioning.
func BenchmarkANSI_SetCursorPosition(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.SetCursorPosition(10, 5)
	}
}

// BenchmarkANSI_MoveCursorUp benchmarks ANSI cursor movement.
func BenchmarkANSI_MoveCursorUp(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.MoveCursorUp(5)
	}
}

// BenchmarkANSI_ClearLine benchmarks ANSI line clearing.
func BenchmarkANSI_ClearLine(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.ClearLine()
	}
}

// BenchmarkANSI_ClearLines benchmarks ANSI multiline clearing.
func BenchmarkANSI_ClearLines(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.ClearLines(10)
	}
}

// BenchmarkANSI_Write benchmarks ANSI text output.
func BenchmarkANSI_Write(b *testing.B) {
	term := unix.NewANSI()
	text := "ptop CPU 42% MEM 3.1G BAT 87% GPU n/a"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.Write(text)
	}
}

// BenchmarkANSI_WriteAt benchmarks ANSI positioned text output.
func BenchmarkANSI_WriteAt(b *testing.B) {
	term := unix.NewANSI()
	text := "ptop CPU 42% MEM 3.1G BAT 87% GPU n/a"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.WriteAt(10, 5, text)
	}
}

// BenchmarkANSI_HideShowCursor benchmarks cursor visibility toggling.
func BenchmarkANSI_HideShowCursor(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.HideCursor()
		_ = term.ShowCursor()
	}
}

// BenchmarkANSI_SaveRestoreCursorPosition benchmarks cursor save/restore.
func BenchmarkANSI_SaveRestoreCursorPosition(b *testing.B) {
	term := unix.NewANSI()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = term.SaveCursorPosition()
		_ = term.RestoreCursorPosition()
	}
}

// Only the ANSI implementation is benchmarked in this package; there are
// no benchmarks for the Windows Console implementation.

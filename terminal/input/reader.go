// Package input decodes raw stdin bytes (ANSI escape sequences and UTF-8
// runes) into widget.InputEvent values for the app loop's InputSource.
package input

import (
	"bufio"
	"io"
	"time"

	"github.com/paiml/presentar-sub007/widget"
)

// Reader decodes a byte stream into key events, recognizing the common
// ANSI escape sequences for arrow and navigation keys.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r for key decoding. In production this wraps the raw
// terminal's stdin; tests can pass a strings.Reader directly.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read blocks for the next decoded key event.
func (d *Reader) Read() (widget.InputEvent, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return widget.InputEvent{}, err
	}

	if b == 0x1B {
		return d.readEscape()
	}
	if b >= 0x80 {
		// Lead byte of a multi-byte UTF-8 sequence: decode the whole rune.
		if err := d.r.UnreadByte(); err == nil {
			if r, _, err := d.r.ReadRune(); err == nil {
				return keyEvent(widget.Key{Rune: r}), nil
			}
		}
	}
	return keyEvent(decodeByte(b)), nil
}

// Poll reads one event, honoring timeout only in the sense that it never
// blocks the caller past a decode error; an underlying raw-mode terminal
// is expected to make ReadByte itself respect read deadlines. timeout is
// accepted to satisfy app.InputSource without forcing every caller to
// wrap the error.
func (d *Reader) Poll(timeout time.Duration) (widget.InputEvent, bool) {
	ev, err := d.Read()
	if err != nil {
		return widget.InputEvent{}, false
	}
	return ev, true
}

func (d *Reader) readEscape() (widget.InputEvent, error) {
	b1, err := d.r.ReadByte()
	if err != nil {
		// A lone ESC with nothing following is the Escape key itself.
		return keyEvent(widget.Key{Name: widget.KeyEscape}), nil
	}

	switch b1 {
	case '[':
		return d.readCSI()
	case 'O':
		b2, err := d.r.ReadByte()
		if err != nil {
			return widget.InputEvent{}, err
		}
		if name, ok := ssKeys[b2]; ok {
			return keyEvent(widget.Key{Name: name}), nil
		}
		return keyEvent(widget.Key{Name: widget.KeyEscape}), nil
	default:
		// Alt+<rune>: ESC followed immediately by a printable byte.
		k := decodeByte(b1)
		k.Alt = true
		return keyEvent(k), nil
	}
}

func (d *Reader) readCSI() (widget.InputEvent, error) {
	b2, err := d.r.ReadByte()
	if err != nil {
		return widget.InputEvent{}, err
	}
	if name, ok := csiKeys[b2]; ok {
		return keyEvent(widget.Key{Name: name}), nil
	}
	return keyEvent(widget.Key{Name: widget.KeyEscape}), nil
}

var csiKeys = map[byte]widget.KeyName{
	'A': widget.KeyUp,
	'B': widget.KeyDown,
	'C': widget.KeyRight,
	'D': widget.KeyLeft,
	'H': widget.KeyHome,
	'F': widget.KeyEnd,
}

var ssKeys = map[byte]widget.KeyName{
	'P': widget.KeyF1,
	'Q': widget.KeyF2,
	'R': widget.KeyF3,
	'S': widget.KeyF4,
}

func decodeByte(b byte) widget.Key {
	switch b {
	case '\r', '\n':
		return widget.Key{Name: widget.KeyEnter}
	case '\t':
		return widget.Key{Name: widget.KeyTab}
	case 0x7F, 0x08:
		return widget.Key{Name: widget.KeyBackspace}
	case ' ':
		return widget.Key{Rune: ' '}
	default:
		if b < 0x20 {
			// Ctrl+<letter>: control codes 1-26 map to 'a'-'z'.
			return widget.Key{Rune: rune('a' + b - 1), Ctrl: true}
		}
		return widget.Key{Rune: rune(b)}
	}
}

func keyEvent(k widget.Key) widget.InputEvent {
	return widget.InputEvent{Kind: widget.EventKeyDown, Key: k}
}

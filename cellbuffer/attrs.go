package cellbuffer

// Attrs is a bitset of terminal text attributes, replacing the teacher's
// per-field booleans with a single comparable value so Cell stays small and
// cheap to compare in the diff hot path.
type Attrs uint16

const (
	Bold Attrs = 1 << iota
	Dim
	Italic
	Underline
	Blink
	Reverse
	Hidden
	Strike
)

// Has reports whether all bits in flag are set.
func (a Attrs) Has(flag Attrs) bool { return a&flag == flag }

// Set returns a with flag set.
func (a Attrs) Set(flag Attrs) Attrs { return a | flag }

// Clear returns a with flag cleared.
func (a Attrs) Clear(flag Attrs) Attrs { return a &^ flag }

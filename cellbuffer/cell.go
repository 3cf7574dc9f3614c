package cellbuffer

import "github.com/rivo/uniseg"

// wideContinuation marks the trailing cell of a double-wide grapheme
// cluster (e.g. CJK characters): the DiffRenderer must skip over it and
// never write into it directly, since the leading cell already painted
// both columns.
const wideContinuation = "\x00"

// Cell is a single terminal cell: a grapheme cluster (which may render as
// zero, one, or two columns wide), its foreground/background color, and
// its attributes.
type Cell struct {
	Cluster string
	Width   int
	Fg      Color
	Bg      Color
	Attrs   Attrs
}

// Empty is a single blank cell with no styling.
var Empty = Cell{Cluster: " ", Width: 1}

// NewCell builds a cell from a grapheme cluster, computing its display
// width via grapheme segmentation so combining marks and emoji sequences
// occupy the right number of columns.
func NewCell(cluster string, fg, bg Color, attrs Attrs) Cell {
	return Cell{Cluster: cluster, Width: clusterWidth(cluster), Fg: fg, Bg: bg, Attrs: attrs}
}

// continuationCell is the sentinel placed in the column(s) following a
// double-wide cell.
func continuationCell(fg, bg Color, attrs Attrs) Cell {
	return Cell{Cluster: wideContinuation, Width: 0, Fg: fg, Bg: bg, Attrs: attrs}
}

// IsContinuation reports whether this cell is the trailing half of a
// double-wide cell to its left.
func (c Cell) IsContinuation() bool {
	return c.Cluster == wideContinuation
}

// IsEmpty reports whether the cell is a default blank space.
func (c Cell) IsEmpty() bool {
	return c.Cluster == " " && c.Fg == (Color{}) && c.Bg == (Color{}) && c.Attrs == 0
}

// Equal reports whether two cells would render identically.
func (c Cell) Equal(other Cell) bool {
	return c.Cluster == other.Cluster && c.Width == other.Width &&
		c.Fg.Equal(other.Fg) && c.Bg.Equal(other.Bg) && c.Attrs == other.Attrs
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	state := -1
	width := 0
	s := cluster
	for s != "" {
		var gc string
		gc, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += uniseg.StringWidth(gc)
	}
	return width
}

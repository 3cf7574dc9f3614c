package widget

import (
	"fmt"

	"github.com/paiml/presentar-sub007/canvas"
	"github.com/paiml/presentar-sub007/geometry"
)

// Direction is the main axis a Flex container lays its children along.
type Direction int

const (
	Row Direction = iota
	Column
)

// MainAxisAlignment distributes children along the main axis.
type MainAxisAlignment int

const (
	MainStart MainAxisAlignment = iota
	MainEnd
	MainCenter
	MainSpaceBetween
	MainSpaceAround
	MainSpaceEvenly
)

// CrossAxisAlignment positions children along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossEnd
	CrossCenter
	CrossStretch
)

// FlexChild pairs a widget with its flex factors: Grow distributes leftover
// main-axis space, Shrink scales how much a child gives up under pressure,
// and Basis is its preferred main-axis size before growth/shrink applies.
type FlexChild struct {
	Widget Widget
	Grow   float64
	Shrink float64
	Basis  int
}

// Flex lays out children in a row or column, distributing extra main-axis
// space per the simplified flexbox algebra: measure natural sizes, then
// grow or shrink children to fill the container, then position by
// MainAxisAlignment and CrossAxisAlignment.
type Flex struct {
	Base
	Direction  Direction
	MainAlign  MainAxisAlignment
	CrossAlign CrossAxisAlignment
	Gap        int
	children   []FlexChild
}

// NewFlex creates an empty container along the given direction.
func NewFlex(direction Direction) *Flex {
	return &Flex{Direction: direction, CrossAlign: CrossStretch}
}

// Add appends a child with the given flex factors.
func (f *Flex) Add(w Widget, grow, shrink float64, basis int) *Flex {
	if grow < 0 || shrink < 0 {
		panic("widget: flex grow/shrink must be non-negative")
	}
	f.children = append(f.children, FlexChild{Widget: w, Grow: grow, Shrink: shrink, Basis: basis})
	return f
}

// WithGap sets the spacing between children in cells. Panics on negative gap.
func (f *Flex) WithGap(gap int) *Flex {
	if gap < 0 {
		panic(fmt.Sprintf("widget: gap must be non-negative, got %d", gap))
	}
	f.Gap = gap
	return f
}

func (f *Flex) isHorizontal() bool { return f.Direction == Row }

// Children returns the contained widgets in order.
func (f *Flex) Children() []Widget {
	out := make([]Widget, len(f.children))
	for i, c := range f.children {
		out[i] = c.Widget
	}
	return out
}

// ChildrenMut returns the contained widgets in order, for traversal that
// mutates widget state (e.g. dispatching a resize).
func (f *Flex) ChildrenMut() []Widget { return f.Children() }

// Measure sums children's basis sizes along the main axis and takes the
// max along the cross axis, clamped to the incoming constraints.
func (f *Flex) Measure(c geometry.Constraints) geometry.Size {
	var mainTotal, crossMax int
	for i, child := range f.children {
		childConstraints := geometry.Unbounded()
		size := child.Widget.Measure(childConstraints)
		main, cross := f.axisSizes(size)
		if child.Basis > 0 {
			main = child.Basis
		}
		mainTotal += main
		if i > 0 {
			mainTotal += f.Gap
		}
		if cross > crossMax {
			crossMax = cross
		}
	}
	if f.isHorizontal() {
		return c.Constrain(geometry.Size{Width: mainTotal, Height: crossMax})
	}
	return c.Constrain(geometry.Size{Width: crossMax, Height: mainTotal})
}

func (f *Flex) axisSizes(s geometry.Size) (main, cross int) {
	if f.isHorizontal() {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

// Layout assigns rect to the container, then distributes main-axis space
// among children (growing or shrinking against their basis) before
// positioning each by MainAlign and CrossAlign.
func (f *Flex) Layout(rect geometry.Rect) {
	f.Base.Layout(rect)
	if len(f.children) == 0 {
		return
	}

	containerMain, containerCross := f.rectAxisSizes(rect)
	sizes := f.resolveMainSizes(containerMain)
	positions := f.mainAxisPositions(containerMain, sizes)

	for i, child := range f.children {
		crossSize := containerCross
		crossPos := 0
		if f.CrossAlign != CrossStretch {
			childSize := child.Widget.Measure(geometry.Unbounded())
			_, natCross := f.axisSizes(childSize)
			crossSize = natCross
			crossPos = f.crossAxisPosition(containerCross, natCross)
		}

		var childRect geometry.Rect
		if f.isHorizontal() {
			childRect = geometry.Rect{
				Pos:  geometry.Position{Row: rect.Pos.Row + crossPos, Col: rect.Pos.Col + positions[i]},
				Size: geometry.NewSize(sizes[i], crossSize),
			}
		} else {
			childRect = geometry.Rect{
				Pos:  geometry.Position{Row: rect.Pos.Row + positions[i], Col: rect.Pos.Col + crossPos},
				Size: geometry.NewSize(crossSize, sizes[i]),
			}
		}
		child.Widget.Layout(childRect)
	}
}

func (f *Flex) rectAxisSizes(rect geometry.Rect) (main, cross int) {
	if f.isHorizontal() {
		return rect.Size.Width, rect.Size.Height
	}
	return rect.Size.Height, rect.Size.Width
}

// resolveMainSizes computes each child's final main-axis size: start from
// basis (or natural size if basis is 0), then grow to fill or shrink to
// fit remaining space, weighted by each child's Grow/Shrink factor.
func (f *Flex) resolveMainSizes(containerMain int) []int {
	sizes := make([]int, len(f.children))
	var totalBasis float64
	var totalGrow, totalShrink float64

	for i, child := range f.children {
		basis := child.Basis
		if basis <= 0 {
			natural := child.Widget.Measure(geometry.Unbounded())
			main, _ := f.axisSizes(natural)
			basis = main
		}
		sizes[i] = basis
		totalBasis += float64(basis)
		totalGrow += child.Grow
		totalShrink += child.Shrink
	}

	totalGap := 0
	if len(f.children) > 1 {
		totalGap = f.Gap * (len(f.children) - 1)
	}
	remaining := float64(containerMain-totalGap) - totalBasis

	switch {
	case remaining > 0 && totalGrow > 0:
		for i, child := range f.children {
			sizes[i] += int(remaining * child.Grow / totalGrow)
		}
	case remaining < 0 && totalShrink > 0:
		deficit := -remaining
		for i, child := range f.children {
			reduction := int(deficit * child.Shrink / totalShrink)
			sizes[i] -= reduction
			if sizes[i] < 0 {
				sizes[i] = 0
			}
		}
	}
	return sizes
}

func (f *Flex) mainAxisPositions(containerMain int, sizes []int) []int {
	positions := make([]int, len(sizes))
	var total int
	for i, s := range sizes {
		total += s
		if i > 0 {
			total += f.Gap
		}
	}
	remaining := containerMain - total
	if remaining < 0 {
		remaining = 0
	}

	switch f.MainAlign {
	case MainEnd:
		pos := remaining
		for i, s := range sizes {
			positions[i] = pos
			pos += s + f.Gap
		}
	case MainCenter:
		pos := remaining / 2
		for i, s := range sizes {
			positions[i] = pos
			pos += s + f.Gap
		}
	case MainSpaceBetween:
		if len(sizes) == 1 {
			positions[0] = 0
		} else {
			between := remaining / (len(sizes) - 1)
			pos := 0
			for i, s := range sizes {
				positions[i] = pos
				pos += s + f.Gap + between
			}
		}
	case MainSpaceAround:
		around := 0
		if len(sizes) > 0 {
			around = remaining / len(sizes)
		}
		pos := around / 2
		for i, s := range sizes {
			positions[i] = pos
			pos += s + f.Gap + around
		}
	case MainSpaceEvenly:
		evenly := remaining / (len(sizes) + 1)
		pos := evenly
		for i, s := range sizes {
			positions[i] = pos
			pos += s + f.Gap + evenly
		}
	default: // MainStart
		pos := 0
		for i, s := range sizes {
			positions[i] = pos
			pos += s + f.Gap
		}
	}
	return positions
}

func (f *Flex) crossAxisPosition(containerCross, itemCross int) int {
	var pos int
	switch f.CrossAlign {
	case CrossEnd:
		pos = containerCross - itemCross
	case CrossCenter:
		pos = (containerCross - itemCross) / 2
	default:
		pos = 0
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// Paint paints the flex container's background (none) and delegates to
// each child in order.
func (f *Flex) Paint(c canvas.Canvas) {
	for _, child := range f.children {
		child.Widget.Paint(c)
	}
}

// HandleEvent dispatches an event to the first child whose bounds contain
// the event's position (for pointer events) or to all children (for
// broadcast events like Resize), stopping at the first child that returns
// a non-nil Message. Children are tried in reverse z-order: Paint paints
// children 0..N-1 in order, so the last child is frontmost and gets first
// refusal on the event.
func (f *Flex) HandleEvent(ev InputEvent) *Message {
	positional := ev.Kind == EventMouseMove || ev.Kind == EventMouseDown || ev.Kind == EventMouseUp
	for i := len(f.children) - 1; i >= 0; i-- {
		child := f.children[i]
		if positional && !child.Widget.Bounds().Contains(ev.Position) {
			continue
		}
		if msg := child.Widget.HandleEvent(ev); msg != nil {
			return msg
		}
	}
	return nil
}

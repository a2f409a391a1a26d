package flex

import "strings"

// Direction is the main axis of a container and the order in which its items
// are placed along it.
type Direction uint8

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

var directionNames = [...]string{"row", "row-reverse", "column", "column-reverse"}

func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ParseDirection parses a CSS flex-direction keyword.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if strings.EqualFold(s, n) {
			return Direction(i), true
		}
	}
	return Row, false
}

func directionOf(horizontal, reverse bool) Direction {
	switch {
	case horizontal && !reverse:
		return Row
	case horizontal:
		return RowReverse
	case !reverse:
		return Column
	default:
		return ColumnReverse
	}
}

// Align positions an item within its line along the cross axis.
type Align uint8

const (
	// AlignAuto defers to the container's AlignItems. As a container value it
	// means stretch.
	AlignAuto Align = iota
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignStretch
)

var alignNames = [...]string{"auto", "flex-start", "flex-end", "center", "stretch"}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return "unknown"
}

// ParseAlign parses a CSS align-items / align-self keyword.
func ParseAlign(s string) (Align, bool) {
	for i, n := range alignNames {
		if strings.EqualFold(s, n) {
			return Align(i), true
		}
	}
	return AlignAuto, false
}

// SpacingMode distributes free space along an axis. It is used both for
// justify-content (items in a line) and align-content (lines in a
// container); Stretch is meaningful for align-content only and otherwise
// behaves like FlexStart.
type SpacingMode uint8

const (
	FlexStart SpacingMode = iota
	FlexEnd
	Center
	SpaceBetween
	SpaceAround
	SpaceEvenly
	Stretch
)

var spacingNames = [...]string{
	"flex-start", "flex-end", "center",
	"space-between", "space-around", "space-evenly", "stretch",
}

func (m SpacingMode) String() string {
	if int(m) < len(spacingNames) {
		return spacingNames[m]
	}
	return "unknown"
}

// ParseSpacingMode parses a CSS justify-content / align-content keyword.
func ParseSpacingMode(s string) (SpacingMode, bool) {
	for i, n := range spacingNames {
		if strings.EqualFold(s, n) {
			return SpacingMode(i), true
		}
	}
	return FlexStart, false
}

package flex

// Container is the flex container configuration of a target. It exists while
// flex is enabled on the target; see [Tree.SetEnabled].
type Container struct {
	tree *Tree
	id   ID

	horizontal bool
	reverse    bool
	wrap       bool

	alignItems     Align
	justifyContent SpacingMode
	alignContent   SpacingMode

	paddingTop, paddingRight, paddingBottom, paddingLeft float64

	layout layouter
}

func newContainer(t *Tree, id ID) *Container {
	c := &Container{
		tree:       t,
		id:         id,
		horizontal: true,
		alignItems: AlignStretch,
	}
	c.layout.tree = t
	c.layout.id = id
	c.layout.c = c
	return c
}

// Container returns the flex container configuration of the target, or nil
// when flex is not enabled on it.
func (t *Tree) Container(id ID) *Container {
	if s := t.slot(id); s != nil {
		return s.container
	}
	return nil
}

// ID returns the target the container belongs to.
func (c *Container) ID() ID { return c.id }

func (c *Container) changedContents() {
	c.tree.changedContents(c.id)
}

func (c *Container) changedDimensions() {
	c.tree.ForceLayout(c.id, true, true)
}

// changedAxes is called after a change of direction or wrapping. Axes that
// fitted the contents before the change may lose that size, and cached sizes
// no longer apply.
func (c *Container) changedAxes(fitW, fitH bool) {
	c.layout.invalidate()
	c.tree.ForceLayout(c.id, fitW, fitH)
}

// Direction returns the flex direction.
func (c *Container) Direction() Direction {
	return directionOf(c.horizontal, c.reverse)
}

// SetDirection sets the flex direction.
func (c *Container) SetDirection(d Direction) {
	horizontal := d == Row || d == RowReverse
	reverse := d == RowReverse || d == ColumnReverse
	if c.horizontal == horizontal && c.reverse == reverse {
		return
	}
	fitW, fitH := c.layout.isAxisFitToContents(true), c.layout.isAxisFitToContents(false)
	c.horizontal = horizontal
	c.reverse = reverse
	c.changedAxes(fitW, fitH)
}

// Horizontal reports whether the main axis is horizontal.
func (c *Container) Horizontal() bool { return c.horizontal }

// Reverse reports whether items are placed from the main-axis end.
func (c *Container) Reverse() bool { return c.reverse }

// Wrap reports whether items wrap onto multiple lines.
func (c *Container) Wrap() bool { return c.wrap }

// SetWrap enables or disables line wrapping.
func (c *Container) SetWrap(wrap bool) {
	if c.wrap == wrap {
		return
	}
	fitW, fitH := c.layout.isAxisFitToContents(true), c.layout.isAxisFitToContents(false)
	c.wrap = wrap
	c.changedAxes(fitW, fitH)
}

// AlignItems returns the default cross-axis alignment of items.
func (c *Container) AlignItems() Align { return c.alignItems }

// SetAlignItems sets the default cross-axis alignment of items. AlignAuto
// resets it to stretch.
func (c *Container) SetAlignItems(a Align) {
	if a == AlignAuto {
		a = AlignStretch
	}
	if c.alignItems == a {
		return
	}
	c.alignItems = a
	c.changedContents()
}

// JustifyContent returns how free main-axis space is distributed in a line.
func (c *Container) JustifyContent() SpacingMode { return c.justifyContent }

// SetJustifyContent sets how free main-axis space is distributed in a line.
// Stretch only applies to lines and is treated as FlexStart.
func (c *Container) SetJustifyContent(m SpacingMode) {
	if m == Stretch {
		m = FlexStart
	}
	if c.justifyContent == m {
		return
	}
	c.justifyContent = m
	c.changedContents()
}

// AlignContent returns how free cross-axis space is distributed over lines.
func (c *Container) AlignContent() SpacingMode { return c.alignContent }

// SetAlignContent sets how free cross-axis space is distributed over lines.
func (c *Container) SetAlignContent(m SpacingMode) {
	if c.alignContent == m {
		return
	}
	c.alignContent = m
	c.changedContents()
}

// Padding returns the four paddings.
func (c *Container) Padding() (top, right, bottom, left float64) {
	return c.paddingTop, c.paddingRight, c.paddingBottom, c.paddingLeft
}

// SetPadding sets all four paddings to p.
func (c *Container) SetPadding(p float64) {
	c.SetPaddings(p, p, p, p)
}

// SetPaddings sets the four paddings in CSS order.
func (c *Container) SetPaddings(top, right, bottom, left float64) {
	if c.paddingTop == top && c.paddingRight == right &&
		c.paddingBottom == bottom && c.paddingLeft == left {
		return
	}
	c.paddingTop, c.paddingRight, c.paddingBottom, c.paddingLeft = top, right, bottom, left
	c.changedDimensions()
}

// SetPaddingTop sets the top padding.
func (c *Container) SetPaddingTop(v float64) {
	c.SetPaddings(v, c.paddingRight, c.paddingBottom, c.paddingLeft)
}

// SetPaddingRight sets the right padding.
func (c *Container) SetPaddingRight(v float64) {
	c.SetPaddings(c.paddingTop, v, c.paddingBottom, c.paddingLeft)
}

// SetPaddingBottom sets the bottom padding.
func (c *Container) SetPaddingBottom(v float64) {
	c.SetPaddings(c.paddingTop, c.paddingRight, v, c.paddingLeft)
}

// SetPaddingLeft sets the left padding.
func (c *Container) SetPaddingLeft(v float64) {
	c.SetPaddings(c.paddingTop, c.paddingRight, c.paddingBottom, v)
}

// Shrunk reports whether the contents had to shrink in the last layout pass.
func (c *Container) Shrunk() bool { return c.layout.shrunk }

// Lines returns the number of lines built in the last layout pass.
func (c *Container) Lines() int { return len(c.layout.lines) }

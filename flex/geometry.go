package flex

// Axis helpers. Every layout algorithm works on a main and a cross axis and
// maps them onto width/height through a horizontal flag, so row and column
// layouts share one implementation.

func (t *Tree) axisSize(id ID, horizontal bool) float64 {
	s := t.slot(id)
	if horizontal {
		return s.w
	}
	return s.h
}

func (t *Tree) setAxisSize(id ID, horizontal bool, v float64) {
	s := t.slot(id)
	if horizontal {
		s.w = v
	} else {
		s.h = v
	}
}

func (t *Tree) axisPos(id ID, horizontal bool) float64 {
	s := t.slot(id)
	if horizontal {
		return s.x
	}
	return s.y
}

func (t *Tree) setAxisPos(id ID, horizontal bool, v float64) {
	s := t.slot(id)
	if horizontal {
		s.x = v
	} else {
		s.y = v
	}
}

// paddingTotal is the padding of a container on both sides of an axis.
func (t *Tree) paddingTotal(id ID, horizontal bool) float64 {
	c := t.slot(id).container
	if c == nil {
		return 0
	}
	if horizontal {
		return c.paddingLeft + c.paddingRight
	}
	return c.paddingTop + c.paddingBottom
}

// paddingOffset is the padding on the leading side of an axis.
func (t *Tree) paddingOffset(id ID, horizontal bool) float64 {
	c := t.slot(id).container
	if c == nil {
		return 0
	}
	if horizontal {
		return c.paddingLeft
	}
	return c.paddingTop
}

// marginTotal is the margin of an item on both sides of an axis.
func (t *Tree) marginTotal(id ID, horizontal bool) float64 {
	it := t.slot(id).item
	if it == nil {
		return 0
	}
	if horizontal {
		return it.marginLeft + it.marginRight
	}
	return it.marginTop + it.marginBottom
}

// marginOffset is the margin on the leading side of an axis.
func (t *Tree) marginOffset(id ID, horizontal bool) float64 {
	it := t.slot(id).item
	if it == nil {
		return 0
	}
	if horizontal {
		return it.marginLeft
	}
	return it.marginTop
}

// outerSize is the layout size plus padding and margin: the space the item
// occupies in its line.
func (t *Tree) outerSize(id ID, horizontal bool) float64 {
	return t.axisSize(id, horizontal) + t.paddingTotal(id, horizontal) + t.marginTotal(id, horizontal)
}

// parentAxisSize is the reference size for parent-relative functions: the
// content size of the flex parent, or the host size of a plain parent.
func (t *Tree) parentAxisSize(id ID, horizontal bool) float64 {
	if p := t.flexParent(id); p.Valid() {
		return t.axisSize(p, horizontal)
	}
	parent := t.slot(id).parent
	if t.slot(parent) == nil {
		return 0
	}
	_, _, w, h := t.host.Geometry(parent)
	if horizontal {
		return w
	}
	return h
}

func (t *Tree) sizeFunc(id ID, horizontal bool) AxisFunc {
	s := t.slot(id)
	if horizontal {
		return s.funcs.W
	}
	return s.funcs.H
}

// hasFixedSize reports whether an axis has a basis other than the layout:
// either an original size or a size function.
func (t *Tree) hasFixedSize(id ID, horizontal bool) bool {
	s := t.slot(id)
	if horizontal {
		return s.originalW != 0 || s.funcs.W != nil
	}
	return s.originalH != 0 || s.funcs.H != nil
}

// relAxisSize is the basis size of an axis: the original size or the result
// of the size function. Functions are ignored when the flex parent sizes
// itself to its contents on that axis, which would be circular.
func (t *Tree) relAxisSize(id ID, horizontal bool) float64 {
	if f := t.sizeFunc(id, horizontal); f != nil {
		if p := t.flexParent(id); p.Valid() && t.slot(p).container.layout.isAxisFitToContents(horizontal) {
			return 0
		}
		return f(t.parentAxisSize(id, horizontal))
	}
	s := t.slot(id)
	if horizontal {
		return s.originalW
	}
	return s.originalH
}

// axisMinSize is the size an item cannot shrink below.
func (t *Tree) axisMinSize(id ID, horizontal bool) float64 {
	s := t.slot(id)
	var size float64
	switch {
	case s.container != nil:
		size = s.container.layout.contentMinSize(horizontal)
	case s.item != nil && s.item.Shrink() != 0:
		size = 0
	default:
		size = t.relAxisSize(id, horizontal)
	}
	if s.item != nil {
		if m := s.item.minSize(horizontal); m > 0 {
			size = max(size, m)
		}
	}
	return size
}

// resetAxisSize sets an item back to its basis size on one axis.
func (t *Tree) resetAxisSize(id ID, horizontal bool) {
	size := t.relAxisSize(id, horizontal)
	if it := t.slot(id).item; it != nil {
		size = it.clamp(size, horizontal)
	}
	t.setAxisSize(id, horizontal, size)
}

// resizeAxis changes the layout size of an item. Nested containers re-lay
// out their contents for the new size.
func (t *Tree) resizeAxis(id ID, horizontal bool, size float64) {
	if c := t.slot(id).container; c != nil {
		c.layout.squeeze(horizontal, size)
		if c.horizontal == horizontal {
			c.layout.resizeMainAxis(size)
		} else {
			c.layout.resizeCrossAxis(size)
		}
		return
	}
	t.setAxisSize(id, horizontal, size)
}

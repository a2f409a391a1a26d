package flex

// positionLine places the items of a line along the main axis, distributing
// the line's free space according to justify-content.
func (l *layouter) positionLine(items []ID, ln line) {
	t := l.tree
	horizontal := l.c.horizontal
	before, between := Spacing(l.c.justifyContent, ln.count(), ln.available)
	pos := before
	for _, id := range items[ln.start:ln.end] {
		t.setAxisPos(id, horizontal, pos)
		pos += t.outerSize(id, horizontal) + between
	}
}

// finalizeContents pushes the layout of every item of the container to the
// host, recursing into nested containers that changed.
func (t *Tree) finalizeContents(id ID) {
	for _, item := range t.items(id) {
		t.finalizeItemAndContents(id, item)
	}
	for _, c := range t.slot(id).children {
		if cs := t.slot(c); cs != nil && !cs.visible {
			t.discardHidden(c)
		}
	}
}

// discardHidden clears the pending changes of a hidden subtree. Containers
// in it are laid out from scratch once they are shown again.
func (t *Tree) discardHidden(id ID) {
	s := t.slot(id)
	if s == nil || s.recalc.Clean() {
		return
	}
	s.recalc = Recalc{}
	if s.container != nil {
		s.container.layout.invalidate()
	}
	for _, c := range s.children {
		t.discardHidden(c)
	}
}

func (t *Tree) finalizeItemAndContents(parent, id ID) {
	s := t.slot(id)
	if s.container == nil {
		t.finalizeItem(parent, id)
		return
	}
	l := &s.container.layout
	valid := l.validateCache()
	t.finalizeItem(parent, id)
	if !valid {
		t.finalizeContents(id)
	}
	l.recordFinalSize()
}

// finalizeItem converts the layout position of an item into coordinates
// relative to the parent node: mirrored for reverse directions and offset by
// margin and parent padding.
func (t *Tree) finalizeItem(parent, id ID) {
	c := t.slot(parent).container
	x := t.finalAxisPos(c, parent, id, true)
	y := t.finalAxisPos(c, parent, id, false)
	w := t.axisSize(id, true) + t.paddingTotal(id, true)
	h := t.axisSize(id, false) + t.paddingTotal(id, false)
	t.setLayout(id, x, y, w, h)
	t.clearRecalc(id)
}

func (t *Tree) finalAxisPos(c *Container, parent, id ID, horizontal bool) float64 {
	pos := t.axisPos(id, horizontal)
	if c.reverse && c.horizontal == horizontal {
		pos = t.axisSize(parent, horizontal) - pos - t.outerSize(id, horizontal)
	}
	return pos + t.marginOffset(id, horizontal) + t.paddingOffset(parent, horizontal)
}

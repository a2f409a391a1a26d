package flex

// alignLines distributes the lines over the cross axis according to
// align-content and aligns the items within each line.
func (l *layouter) alignLines() {
	t := l.tree
	items := t.items(l.id)
	crossSize := l.crossSize()

	if !l.c.wrap && len(l.lines) == 1 {
		// A single-line container gives its line the full cross size.
		l.alignLine(items, l.lines[0], 0, crossSize)
		return
	}

	free := crossSize - l.totalCross
	mode := l.c.alignContent
	before, between := Spacing(mode, len(l.lines), free)
	var stretch float64
	if mode == Stretch && len(l.lines) > 0 && free > 0 {
		stretch = free / float64(len(l.lines))
	}
	pos := before
	for _, ln := range l.lines {
		size := ln.crossSize + stretch
		l.alignLine(items, ln, pos, size)
		pos += size + between
	}
}

// alignLine sets the cross-axis position, and for stretched items the size,
// of every item in a line. When resizing a nested container changes its
// main-axis size, the line is positioned again.
func (l *layouter) alignLine(items []ID, ln line, offset, size float64) {
	t := l.tree
	resized := false
	for _, id := range items[ln.start:ln.end] {
		mainBefore := t.axisSize(id, l.c.horizontal)
		l.alignItem(id, offset, size)
		if t.axisSize(id, l.c.horizontal) != mainBefore {
			resized = true
		}
	}
	if resized {
		var used float64
		for _, id := range items[ln.start:ln.end] {
			used += t.outerSize(id, l.c.horizontal)
		}
		ln.available = l.mainSize() - used
		l.positionLine(items, ln)
	}
}

func (l *layouter) alignItem(id ID, offset, lineSize float64) {
	t := l.tree
	cross := !l.c.horizontal
	it := t.slot(id).item

	align := it.alignSelf
	if align == AlignAuto {
		align = l.c.alignItems
	}
	if align == AlignStretch && t.hasFixedSize(id, cross) {
		align = AlignFlexStart
	}
	if align != AlignStretch && !l.isCrossAxisFitToContents() && t.sizeFunc(id, cross) != nil {
		// The container's cross size may have changed since the item's
		// basis was computed.
		size := it.clamp(t.relAxisSize(id, cross), cross)
		t.resizeAxis(id, cross, size)
	}

	switch align {
	case AlignFlexEnd:
		t.setAxisPos(id, cross, offset+lineSize-t.outerSize(id, cross))
	case AlignCenter:
		t.setAxisPos(id, cross, offset+(lineSize-t.outerSize(id, cross))/2)
	case AlignStretch:
		t.setAxisPos(id, cross, offset)
		size := lineSize - t.marginTotal(id, cross) - t.paddingTotal(id, cross)
		size = max(it.clamp(size, cross), 0)
		t.resizeAxis(id, cross, size)
	default:
		t.setAxisPos(id, cross, offset)
	}
}

package flex

// epsilon absorbs float noise in overflow checks and grow/shrink loops.
const epsilon = 1e-5

// line is a run of items laid out along the main axis.
type line struct {
	start, end int // item index range [start, end)
	available  float64
	crossSize  float64 // largest outer cross size of the items
}

func (ln line) count() int { return ln.end - ln.start }

// layoutLines partitions the items into lines, lays out each line along the
// main axis and records the content size.
func (l *layouter) layoutLines() {
	t := l.tree
	items := t.items(l.id)
	horizontal := l.c.horizontal
	mainSize := l.mainSize()

	l.lines = l.lines[:0]
	l.contentMain = 0

	var pos float64
	start := 0
	for i, id := range items {
		l.layoutItem(id)
		size := t.outerSize(id, horizontal)
		if l.c.wrap && i > start && pos+size > mainSize+epsilon {
			l.layoutLine(items, start, i, pos, mainSize)
			pos = 0
			start = i
		}
		pos += size
		l.contentMain = max(l.contentMain, pos)
	}
	if start < len(items) {
		l.layoutLine(items, start, len(items), pos, mainSize)
	}
}

// layoutItem brings an item to its basis size before it is placed.
func (l *layouter) layoutItem(id ID) {
	t := l.tree
	if c := t.slot(id).container; c != nil {
		c.layout.updateTreeLayout()
		return
	}
	t.resetAxisSize(id, true)
	t.resetAxisSize(id, false)
}

func (l *layouter) layoutLine(items []ID, start, end int, used, mainSize float64) {
	ln := line{start: start, end: end}
	if l.resizingMain || !l.isMainAxisFitToContents() {
		ln.available = mainSize - used
	}
	switch {
	case ln.available > 0:
		ln.available -= l.grow(items[start:end], ln.available)
	case ln.available < 0:
		l.shrunk = true
		ln.available += l.shrink(items[start:end], -ln.available)
	}
	l.positionLine(items, ln)
	ln.crossSize = l.lineCrossSize(items[start:end])
	l.lines = append(l.lines, ln)
}

func (l *layouter) lineCrossSize(items []ID) float64 {
	cross := !l.c.horizontal
	var size float64
	for _, id := range items {
		size = max(size, l.tree.outerSize(id, cross))
	}
	return size
}

// contentMinSize is the smallest size the contents of the container can be
// shrunk to along an axis.
func (l *layouter) contentMinSize(horizontal bool) float64 {
	t := l.tree
	items := t.items(l.id)
	if horizontal == l.c.horizontal {
		var size float64
		for _, id := range items {
			m := t.axisMinSize(id, horizontal) + t.paddingTotal(id, horizontal) + t.marginTotal(id, horizontal)
			if l.c.wrap {
				size = max(size, m)
			} else {
				size += m
			}
		}
		return size
	}

	itemMin := func(id ID) float64 {
		return t.axisMinSize(id, horizontal) + t.paddingTotal(id, horizontal) + t.marginTotal(id, horizontal)
	}
	if len(l.lines) == 0 || l.lines[len(l.lines)-1].end != len(items) {
		// No lines from a pass over the current items: treat them as one line.
		var size float64
		for _, id := range items {
			size = max(size, itemMin(id))
		}
		return size
	}
	var total float64
	for _, ln := range l.lines {
		var size float64
		for _, id := range items[ln.start:ln.end] {
			size = max(size, itemMin(id))
		}
		total += size
	}
	return total
}

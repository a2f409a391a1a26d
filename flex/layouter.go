package flex

// layouter runs the layout of one container. It keeps the state of the last
// pass so that clean nested containers can be reused when their parent is
// laid out again.
type layouter struct {
	tree *Tree
	id   ID
	c    *Container

	// While resizing an axis on behalf of the parent, that axis keeps its
	// size instead of fitting the contents.
	resizingMain  bool
	resizingCross bool

	// shrunk is set when the contents overflowed the main axis in the last
	// pass and had to shrink.
	shrunk bool

	// squeezedW and squeezedH are set when the parent made the container
	// smaller than its basis size on that axis. Its size then depends on the
	// minimum size of its contents.
	squeezedW, squeezedH bool

	lines       []line
	contentMain float64
	totalCross  float64

	// Size after the last full layout, before the parent grew, shrank or
	// stretched the container. Kept as width and height so that it survives
	// a change of direction.
	cached           bool
	cachedW, cachedH float64

	// Size last pushed to the host.
	finalized      bool
	finalW, finalH float64

	doneBuf  []bool
	basisBuf []float64
}

func (l *layouter) mainSize() float64 { return l.tree.axisSize(l.id, l.c.horizontal) }

func (l *layouter) crossSize() float64 { return l.tree.axisSize(l.id, !l.c.horizontal) }

func (l *layouter) setMainSize(v float64) { l.tree.setAxisSize(l.id, l.c.horizontal, v) }

func (l *layouter) setCrossSize(v float64) { l.tree.setAxisSize(l.id, !l.c.horizontal, v) }

func (l *layouter) isMainAxisFitToContents() bool {
	return !l.c.wrap && !l.tree.hasFixedSize(l.id, l.c.horizontal)
}

func (l *layouter) isCrossAxisFitToContents() bool {
	return !l.tree.hasFixedSize(l.id, !l.c.horizontal)
}

func (l *layouter) isAxisFitToContents(horizontal bool) bool {
	if horizontal == l.c.horizontal {
		return l.isMainAxisFitToContents()
	}
	return l.isCrossAxisFitToContents()
}

// layoutTree is the entry point of a layout pass started at this container.
func (l *layouter) layoutTree() {
	t := l.tree
	if p := t.flexParent(l.id); p.Valid() {
		l.updateSubTreeLayout()
		t.finalizeItem(p, l.id)
	} else {
		l.updateTreeLayout()
		w := t.axisSize(l.id, true) + t.paddingTotal(l.id, true)
		h := t.axisSize(l.id, false) + t.paddingTotal(l.id, false)
		t.setLayout(l.id, 0, 0, w, h)
	}
	t.finalizeContents(l.id)
	l.recordFinalSize()
	t.clearRecalc(l.id)
}

// updateSubTreeLayout re-lays out the contents of an item container whose
// change cannot have affected its own size, keeping its dimensions.
func (l *layouter) updateSubTreeLayout() {
	l.shrunk = false
	l.resizingMain, l.resizingCross = true, true
	l.layoutAxes()
	l.resizingMain, l.resizingCross = false, false
}

// updateTreeLayout lays out the container from its basis size, or restores
// the result of the previous pass when nothing changed.
func (l *layouter) updateTreeLayout() {
	s := l.tree.slot(l.id)
	if s.recalc.Changed || !l.cached {
		l.performUpdateLayout()
		return
	}
	if s.funcs.W != nil || s.funcs.H != nil {
		// The parent size may have changed.
		s.recalc.Changed = true
		l.performUpdateLayout()
		return
	}
	l.tree.setAxisSize(l.id, true, l.cachedW)
	l.tree.setAxisSize(l.id, false, l.cachedH)
	l.squeezedW, l.squeezedH = false, false
}

func (l *layouter) performUpdateLayout() {
	l.setInitialAxisSizes()
	l.layoutAxes()
	l.cached = true
	l.cachedW = l.tree.axisSize(l.id, true)
	l.cachedH = l.tree.axisSize(l.id, false)
}

// invalidate drops the results of previous passes, so that the next pass
// lays the container out from scratch.
func (l *layouter) invalidate() {
	l.cached = false
	l.finalized = false
}

// squeeze records that the parent is about to resize an axis to size.
func (l *layouter) squeeze(horizontal bool, size float64) {
	if size >= l.tree.axisSize(l.id, horizontal) {
		return
	}
	if horizontal {
		l.squeezedW = true
	} else {
		l.squeezedH = true
	}
}

func (l *layouter) finalSize(horizontal bool) float64 {
	if horizontal {
		return l.finalW
	}
	return l.finalH
}

func (l *layouter) setInitialAxisSizes() {
	t := l.tree
	if t.flexParent(l.id).Valid() {
		t.resetAxisSize(l.id, true)
		t.resetAxisSize(l.id, false)
	} else {
		t.setAxisSize(l.id, true, t.relAxisSize(l.id, true))
		t.setAxisSize(l.id, false, t.relAxisSize(l.id, false))
	}
	l.resizingMain = false
	l.resizingCross = false
	l.shrunk = false
	l.squeezedW, l.squeezedH = false, false
}

func (l *layouter) layoutAxes() {
	l.layoutMainAxis()
	l.layoutCrossAxis()
}

func (l *layouter) layoutMainAxis() {
	l.layoutLines()
	if !l.resizingMain && l.isMainAxisFitToContents() {
		l.setMainSize(l.clampOwn(l.contentMain, l.c.horizontal))
	}
}

func (l *layouter) layoutCrossAxis() {
	l.totalCross = 0
	for _, ln := range l.lines {
		l.totalCross += ln.crossSize
	}
	l.fitCrossAxisSizeToContents()
	l.alignLines()
}

func (l *layouter) fitCrossAxisSizeToContents() {
	if !l.resizingCross && l.isCrossAxisFitToContents() {
		l.setCrossSize(l.clampOwn(l.totalCross, !l.c.horizontal))
	}
}

// clampOwn applies the container's own min/max settings when it is an item.
func (l *layouter) clampOwn(size float64, horizontal bool) float64 {
	if !l.tree.flexParent(l.id).Valid() {
		return size
	}
	return l.tree.slot(l.id).item.clamp(size, horizontal)
}

// resizeMainAxis is called by the parent when it grows, shrinks or stretches
// this container along its main axis.
func (l *layouter) resizeMainAxis(size float64) {
	if l.mainSize() == size {
		return
	}
	s := l.tree.slot(l.id)
	if s.recalc.Changed {
		l.performResizeMainAxis(size)
		return
	}
	if (l.finalized && size == l.finalSize(l.c.horizontal)) || !l.isCrossAxisFitToContents() {
		// The contents are validated against the final size when the
		// pass is finalized.
		l.setMainSize(size)
		l.fitCrossAxisSizeToContents()
		return
	}
	s.recalc.Changed = true
	l.performResizeMainAxis(size)
}

func (l *layouter) performResizeMainAxis(size float64) {
	l.shrunk = false
	l.setMainSize(size)
	l.resizingMain = true
	l.layoutAxes()
	l.resizingMain = false
}

// resizeCrossAxis is the cross-axis counterpart of resizeMainAxis.
func (l *layouter) resizeCrossAxis(size float64) {
	if l.crossSize() == size {
		return
	}
	if l.tree.slot(l.id).recalc.Changed {
		l.performResizeCrossAxis(size)
		return
	}
	l.setCrossSize(size)
}

func (l *layouter) performResizeCrossAxis(size float64) {
	l.setCrossSize(size)
	l.resizingCross = true
	l.layoutCrossAxis()
	l.resizingCross = false
}

// validateCache reports whether the contents of a clean nested container are
// still valid for its final size. If the size differs from the one pushed in
// the previous pass, the contents are laid out again for the new size.
func (l *layouter) validateCache() bool {
	if !l.tree.slot(l.id).recalc.Clean() {
		return false
	}
	t := l.tree
	if l.finalized && t.axisSize(l.id, true) == l.finalW && t.axisSize(l.id, false) == l.finalH {
		return true
	}
	cross := l.crossSize()
	l.performResizeMainAxis(l.mainSize())
	l.performResizeCrossAxis(cross)
	return false
}

func (l *layouter) recordFinalSize() {
	l.finalized = true
	l.finalW = l.tree.axisSize(l.id, true)
	l.finalH = l.tree.axisSize(l.id, false)
}

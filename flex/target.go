package flex

// --- Enablement ---

// SetEnabled turns the target into a flex container (true) or back into a
// plain node (false). Enabling makes every child a flex item.
func (t *Tree) SetEnabled(id ID, enabled bool) {
	if t.slot(id) == nil || enabled == t.isFlexEnabled(id) {
		return
	}
	if enabled {
		t.enableFlex(id)
	} else {
		t.disableFlex(id)
	}
}

// SetItemEnabled controls whether the target participates as a flex item in
// a flex parent. Items are enabled by default. Disabling keeps the item
// settings so that re-enabling restores them.
func (t *Tree) SetItemEnabled(id ID, enabled bool) {
	s := t.slot(id)
	if s == nil {
		return
	}
	if !enabled {
		if s.itemDisabled {
			return
		}
		parent := t.flexParent(id)
		s.itemDisabled = true
		t.checkEnabled(id)
		if parent.Valid() {
			t.changedChildren(parent)
		}
		return
	}
	t.ensureItem(id)
	if !s.itemDisabled {
		return
	}
	s.itemDisabled = false
	t.checkEnabled(id)
	if parent := t.flexParent(id); parent.Valid() {
		t.changedChildren(parent)
	}
}

// IsFlexContainer reports whether the target is a flex container.
func (t *Tree) IsFlexContainer(id ID) bool {
	return t.isFlexEnabled(id)
}

// IsFlexItem reports whether the target is laid out by a flex parent.
func (t *Tree) IsFlexItem(id ID) bool {
	return t.flexParent(id).Valid()
}

// IsEnabled reports whether the target's geometry is under flex control.
func (t *Tree) IsEnabled(id ID) bool {
	s := t.slot(id)
	return s != nil && s.enabled
}

// FlexParent returns the container laying out the target, or NoID.
func (t *Tree) FlexParent(id ID) ID {
	return t.flexParent(id)
}

func (t *Tree) isFlexEnabled(id ID) bool {
	s := t.slot(id)
	return s != nil && s.container != nil
}

func (t *Tree) flexParent(id ID) ID {
	s := t.slot(id)
	if s == nil || s.itemDisabled {
		return NoID
	}
	if ps := t.slot(s.parent); ps != nil && ps.container != nil {
		return s.parent
	}
	return NoID
}

func (t *Tree) enableFlex(id ID) {
	s := t.slot(id)
	s.container = newContainer(t, id)
	s.childGen++
	t.checkEnabled(id)
	t.ForceLayout(id, true, true)
	for _, c := range s.children {
		t.enableFlexItem(c)
	}
}

func (t *Tree) disableFlex(id ID) {
	t.ForceLayout(id, true, true)
	s := t.slot(id)
	s.container = nil
	s.childGen++
	t.checkEnabled(id)
	for _, c := range s.children {
		t.disableFlexItem(c)
	}
}

func (t *Tree) enableFlexItem(id ID) {
	s := t.slot(id)
	if s == nil {
		return
	}
	t.ensureItem(id)
	if s.parent.Valid() {
		t.changedContents(s.parent)
	}
	t.checkEnabled(id)
}

func (t *Tree) disableFlexItem(id ID) {
	s := t.slot(id)
	if s == nil {
		return
	}
	t.checkEnabled(id)
	// The flex offsets cannot be recovered, so they are cleared.
	s.x, s.y = 0, 0
}

func (t *Tree) ensureItem(id ID) *Item {
	s := t.slot(id)
	if s.item == nil {
		s.item = newItem(t, id)
	}
	return s.item
}

// checkEnabled brings the enabled flag in line with container and item
// membership, snapshotting or restoring the original geometry on change.
func (t *Tree) checkEnabled(id ID) {
	s := t.slot(id)
	if s == nil {
		return
	}
	enabled := s.container != nil || t.flexParent(id).Valid()
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	if enabled {
		s.originalX, s.originalY, s.originalW, s.originalH = t.host.Geometry(id)
		return
	}
	s.recalc = Recalc{}
	t.host.ApplyLayout(id, s.originalX, s.originalY, s.originalW, s.originalH)
}

// --- Original geometry ---

// Original returns the geometry the node had, or was given, outside of flex
// control. For flex items the original position is an offset added to the
// computed position.
func (t *Tree) Original(id ID) (x, y, w, h float64) {
	if s := t.slot(id); s != nil {
		return s.originalX, s.originalY, s.originalW, s.originalH
	}
	return 0, 0, 0, 0
}

// SetOriginalPosition updates the original position of a flex-controlled
// target.
func (t *Tree) SetOriginalPosition(id ID, x, y float64) {
	s := t.slot(id)
	if s == nil || (s.originalX == x && s.originalY == y) {
		return
	}
	s.originalX, s.originalY = x, y
	t.changedContents(id)
}

// SetOriginalSize updates the original size of a flex-controlled target. A
// change forces a re-layout of the changed axes only. A size of 0 means the
// axis is sized by the layout.
func (t *Tree) SetOriginalSize(id ID, w, h float64) {
	s := t.slot(id)
	if s == nil {
		return
	}
	changeW := s.originalW != w
	changeH := s.originalH != h
	if !changeW && !changeH {
		return
	}
	s.originalW, s.originalH = w, h
	t.ForceLayout(id, changeW, changeH)
}

// SetFuncs sets the parent-relative geometry functions of the target. Any nil
// function falls back to the original geometry on that axis.
func (t *Tree) SetFuncs(id ID, funcs AxisFuncs) {
	s := t.slot(id)
	if s == nil {
		return
	}
	s.funcs = funcs
	t.ForceLayout(id, true, true)
}

// Funcs returns the parent-relative geometry functions of the target.
func (t *Tree) Funcs(id ID) AxisFuncs {
	if s := t.slot(id); s != nil {
		return s.funcs
	}
	return AxisFuncs{}
}

// --- Results ---

// Layout returns the pending layout geometry of the target: position within
// the flex parent's content box and size excluding padding.
func (t *Tree) Layout(id ID) (x, y, w, h float64) {
	if s := t.slot(id); s != nil {
		return s.x, s.y, s.w, s.h
	}
	return 0, 0, 0, 0
}

// setLayout pushes final geometry to the host, merging in the original
// position (or its function) as an offset for items and as the position for
// flex roots.
func (t *Tree) setLayout(id ID, x, y, w, h float64) {
	s := t.slot(id)
	ox, oy := s.originalX, s.originalY
	if s.funcs.X != nil {
		ox = s.funcs.X(t.parentAxisSize(id, true))
	}
	if s.funcs.Y != nil {
		oy = s.funcs.Y(t.parentAxisSize(id, false))
	}
	if t.flexParent(id).Valid() {
		x, y = x+ox, y+oy
	} else {
		x, y = ox, oy
	}
	t.host.ApplyLayout(id, x, y, w, h)
	if s = t.slot(id); s.appliedW != w || s.appliedH != h {
		s.appliedW, s.appliedH = w, h
		t.NotifyResized(id)
	}
}

// NotifyResized tells the tree that a node changed size. Flex roots below it
// that are sized or positioned relative to it are scheduled for layout. Hosts
// call it when they resize a node that is not under flex control.
func (t *Tree) NotifyResized(id ID) {
	s := t.slot(id)
	if s == nil {
		return
	}
	for _, c := range s.children {
		cs := t.slot(c)
		if cs == nil || !cs.enabled || t.flexParent(c).Valid() {
			continue
		}
		f := cs.funcs
		if f.W != nil || f.H != nil || f.X != nil || f.Y != nil {
			t.ForceLayout(c, f.W != nil, f.H != nil)
		}
	}
}

// LayoutFlexTree runs the pending layout of the target. Hosts call it once
// per frame for every target passed to RequestLayout, outermost first. A
// clean target is left untouched.
func (t *Tree) LayoutFlexTree(id ID) {
	s := t.slot(id)
	if s == nil || s.recalc.Clean() {
		return
	}
	if s.container == nil {
		// A plain item whose change did not reach its container: only its
		// offsets can have moved.
		if p := t.flexParent(id); p.Valid() {
			t.finalizeItem(p, id)
		}
		s.recalc = Recalc{}
		return
	}
	t.stats.Layouts++
	s.container.layout.layoutTree()
}

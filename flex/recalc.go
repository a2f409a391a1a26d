package flex

// Recalc is the pending re-layout state of a target. It is set by
// configuration changes and cleared when a layout pass finalizes the target.
type Recalc struct {
	// Changed means the target itself or one of its descendants changed.
	Changed bool
	// Horizontal means the target's external width may have changed.
	Horizontal bool
	// Vertical means the target's external height may have changed.
	Vertical bool
}

// Clean reports whether no re-layout is pending.
func (r Recalc) Clean() bool {
	return !r.Changed && !r.Horizontal && !r.Vertical
}

// External reports whether the external size may have changed on any axis.
func (r Recalc) External() bool {
	return r.Horizontal || r.Vertical
}

// Or returns the union of both states.
func (r Recalc) Or(o Recalc) Recalc {
	return Recalc{
		Changed:    r.Changed || o.Changed,
		Horizontal: r.Horizontal || o.Horizontal,
		Vertical:   r.Vertical || o.Vertical,
	}
}

// Fresh returns the flags of r that are not yet set in old.
func (r Recalc) Fresh(old Recalc) Recalc {
	return Recalc{
		Changed:    r.Changed && !old.Changed,
		Horizontal: r.Horizontal && !old.Horizontal,
		Vertical:   r.Vertical && !old.Vertical,
	}
}

// axes returns the external flags expressed on the main and cross axis of a
// container with the given orientation.
func (r Recalc) axes(horizontal bool) (main, cross bool) {
	if horizontal {
		return r.Horizontal, r.Vertical
	}
	return r.Vertical, r.Horizontal
}

// withAxes returns r with the external flags replaced by main and cross flags
// of a container with the given orientation.
func (r Recalc) withAxes(horizontal, main, cross bool) Recalc {
	if horizontal {
		r.Horizontal, r.Vertical = main, cross
	} else {
		r.Horizontal, r.Vertical = cross, main
	}
	return r
}

// Recalc returns the pending re-layout state of the target.
func (t *Tree) Recalc(id ID) Recalc {
	if s := t.slot(id); s != nil {
		return s.recalc
	}
	return Recalc{}
}

// IsChanged reports whether the target has a pending re-layout.
func (t *Tree) IsChanged(id ID) bool {
	return !t.Recalc(id).Clean()
}

// ForceLayout marks the target changed, with its external width and/or
// height possibly changed as well.
func (t *Tree) ForceLayout(id ID, changeWidth, changeHeight bool) {
	t.updateRecalc(id, changeWidth, changeHeight)
}

// changedContents marks the target changed without forcing an external size
// change.
func (t *Tree) changedContents(id ID) {
	t.updateRecalc(id, false, false)
}

func (t *Tree) updateRecalc(id ID, changeWidth, changeHeight bool) {
	s := t.slot(id)
	if s == nil || !s.enabled {
		return
	}
	if s.container != nil {
		// An internal change can alter the size of an axis that fits its
		// contents, or the minimum size of a container that was shrunk.
		l := &s.container.layout
		changeWidth = changeWidth || l.isAxisFitToContents(true) || l.squeezedW
		changeHeight = changeHeight || l.isAxisFitToContents(false) || l.squeezedH
		if l.shrunk {
			if s.container.horizontal {
				changeWidth = true
			} else {
				changeHeight = true
			}
		}
	}
	t.mergeRecalc(id, Recalc{Changed: true, Horizontal: changeWidth, Vertical: changeHeight})
}

// mergeRecalc adds r to the target's state. When r carries external size
// information the target did not have yet, the change is forwarded to the
// flex parent; otherwise the target itself is the root of the change and a
// layout pass is requested for it.
func (t *Tree) mergeRecalc(id ID, r Recalc) {
	s := t.slot(id)
	fresh := r.Fresh(s.recalc)
	s.recalc = s.recalc.Or(r)
	if fresh.External() {
		if p := t.flexParent(id); p.Valid() {
			t.stats.Propagations++
			t.mergeRecalc(p, t.recalcFromChild(p, r))
			return
		}
	}
	t.trigger(id)
}

// recalcFromChild narrows a child's change down to what it can mean for the
// container itself. Over-approximation is intended: propagating too far only
// costs layout time, propagating too little leaves stale geometry.
func (t *Tree) recalcFromChild(id ID, child Recalc) Recalc {
	c := t.slot(id).container
	l := &c.layout
	horizontal := c.horizontal

	main, cross := child.axes(horizontal)
	if l.shrunk && child.Changed {
		// The contents were shrunk in the previous pass, so any change can
		// move their minimum main size and with it this container's size.
		main = true
	}
	if main && !cross && c.wrap && l.isCrossAxisFitToContents() {
		// A main size change can move items between lines.
		cross = true
	}

	widthDynamic := l.isAxisFitToContents(true)
	heightDynamic := l.isAxisFitToContents(false)
	if l.shrunk {
		if horizontal {
			widthDynamic = true
		} else {
			heightDynamic = true
		}
	}

	r := Recalc{Changed: child.Changed}.withAxes(horizontal, main, cross)
	r.Horizontal = r.Horizontal && widthDynamic
	r.Vertical = r.Vertical && heightDynamic
	if child.Changed {
		// The parent sized this container from its content minimum.
		r.Horizontal = r.Horizontal || l.squeezedW
		r.Vertical = r.Vertical || l.squeezedH
	}
	return r
}

func (t *Tree) trigger(id ID) {
	t.stats.Triggers++
	t.host.RequestLayout(id)
}

func (t *Tree) clearRecalc(id ID) {
	if s := t.slot(id); s != nil {
		s.recalc = Recalc{}
	}
}

package flex

// ShrinkFactor is the shrink setting of an item: a fixed factor, or Auto,
// which resolves to 1 for items that are flex containers themselves and to 0
// for plain boxes.
type ShrinkFactor struct {
	Value float64
	Auto  bool
}

// ShrinkAuto is the default shrink setting.
var ShrinkAuto = ShrinkFactor{Auto: true}

// Shrink returns a fixed shrink factor. Negative values clamp to 0.
func Shrink(f float64) ShrinkFactor {
	return ShrinkFactor{Value: max(f, 0)}
}

// Item is the flex item configuration of a target. It is created on first
// use and kept for the target's lifetime, so settings survive the target
// leaving and re-entering a flex container.
type Item struct {
	tree *Tree
	id   ID

	grow      float64
	shrink    ShrinkFactor
	alignSelf Align

	minWidth, maxWidth   float64
	minHeight, maxHeight float64

	marginTop, marginRight, marginBottom, marginLeft float64
}

func newItem(t *Tree, id ID) *Item {
	return &Item{tree: t, id: id, shrink: ShrinkAuto}
}

// Item returns the flex item configuration of the target, creating it if
// needed. It returns nil for a stale handle.
func (t *Tree) Item(id ID) *Item {
	if t.slot(id) == nil {
		return nil
	}
	return t.ensureItem(id)
}

// ID returns the target the item belongs to.
func (it *Item) ID() ID { return it.id }

// changed schedules a re-layout of the container the item is in.
func (it *Item) changed() {
	if p := it.tree.flexParent(it.id); p.Valid() {
		it.tree.changedContents(p)
	}
}

// Grow returns the grow factor.
func (it *Item) Grow() float64 { return it.grow }

// SetGrow sets the grow factor. Negative values clamp to 0.
func (it *Item) SetGrow(v float64) {
	v = max(v, 0)
	if it.grow == v {
		return
	}
	it.grow = v
	it.changed()
}

// ShrinkSetting returns the shrink setting as configured.
func (it *Item) ShrinkSetting() ShrinkFactor { return it.shrink }

// Shrink returns the effective shrink factor. Auto is resolved against the
// current state of the target.
func (it *Item) Shrink() float64 {
	if !it.shrink.Auto {
		return it.shrink.Value
	}
	if it.tree.isFlexEnabled(it.id) {
		return 1
	}
	return 0
}

// SetShrink sets the shrink setting.
func (it *Item) SetShrink(f ShrinkFactor) {
	if f.Auto {
		f.Value = 0
	} else {
		f.Value = max(f.Value, 0)
	}
	if it.shrink == f {
		return
	}
	it.shrink = f
	it.changed()
}

// AlignSelf returns the cross-axis alignment override; AlignAuto when unset.
func (it *Item) AlignSelf() Align { return it.alignSelf }

// SetAlignSelf overrides the container's AlignItems for this item.
func (it *Item) SetAlignSelf(a Align) {
	if it.alignSelf == a {
		return
	}
	it.alignSelf = a
	it.changed()
}

// MinWidth returns the minimum width; 0 when unset.
func (it *Item) MinWidth() float64 { return it.minWidth }

// MaxWidth returns the maximum width; 0 when unset.
func (it *Item) MaxWidth() float64 { return it.maxWidth }

// MinHeight returns the minimum height; 0 when unset.
func (it *Item) MinHeight() float64 { return it.minHeight }

// MaxHeight returns the maximum height; 0 when unset.
func (it *Item) MaxHeight() float64 { return it.maxHeight }

// SetMinWidth sets the minimum width. 0 unsets it.
func (it *Item) SetMinWidth(v float64) { it.setLimit(&it.minWidth, v, true) }

// SetMaxWidth sets the maximum width. 0 unsets it.
func (it *Item) SetMaxWidth(v float64) { it.setLimit(&it.maxWidth, v, true) }

// SetMinHeight sets the minimum height. 0 unsets it.
func (it *Item) SetMinHeight(v float64) { it.setLimit(&it.minHeight, v, false) }

// SetMaxHeight sets the maximum height. 0 unsets it.
func (it *Item) SetMaxHeight(v float64) { it.setLimit(&it.maxHeight, v, false) }

func (it *Item) setLimit(field *float64, v float64, horizontal bool) {
	v = max(v, 0)
	if *field == v {
		return
	}
	*field = v
	it.tree.ForceLayout(it.id, horizontal, !horizontal)
}

// Margin returns the four margins.
func (it *Item) Margin() (top, right, bottom, left float64) {
	return it.marginTop, it.marginRight, it.marginBottom, it.marginLeft
}

// SetMargin sets all four margins to m.
func (it *Item) SetMargin(m float64) {
	it.SetMargins(m, m, m, m)
}

// SetMargins sets the four margins in CSS order.
func (it *Item) SetMargins(top, right, bottom, left float64) {
	if it.marginTop == top && it.marginRight == right &&
		it.marginBottom == bottom && it.marginLeft == left {
		return
	}
	it.marginTop, it.marginRight, it.marginBottom, it.marginLeft = top, right, bottom, left
	it.changed()
}

// SetMarginTop sets the top margin.
func (it *Item) SetMarginTop(v float64) {
	it.SetMargins(v, it.marginRight, it.marginBottom, it.marginLeft)
}

// SetMarginRight sets the right margin.
func (it *Item) SetMarginRight(v float64) {
	it.SetMargins(it.marginTop, v, it.marginBottom, it.marginLeft)
}

// SetMarginBottom sets the bottom margin.
func (it *Item) SetMarginBottom(v float64) {
	it.SetMargins(it.marginTop, it.marginRight, v, it.marginLeft)
}

// SetMarginLeft sets the left margin.
func (it *Item) SetMarginLeft(v float64) {
	it.SetMargins(it.marginTop, it.marginRight, it.marginBottom, v)
}

func (it *Item) minSize(horizontal bool) float64 {
	if horizontal {
		return it.minWidth
	}
	return it.minHeight
}

func (it *Item) maxSize(horizontal bool) float64 {
	if horizontal {
		return it.maxWidth
	}
	return it.maxHeight
}

// clamp applies the min/max settings of an axis. Unset limits are ignored.
func (it *Item) clamp(size float64, horizontal bool) float64 {
	if m := it.minSize(horizontal); m > 0 {
		size = max(size, m)
	}
	if m := it.maxSize(horizontal); m > 0 {
		size = min(size, m)
	}
	return size
}

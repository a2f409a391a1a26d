package flex

// ID is a stable handle to a target in a [Tree]. The zero ID refers to no
// target. A handle becomes stale when its target is released; stale handles
// are ignored by every Tree operation.
type ID struct {
	index uint32
	gen   uint32
}

// NoID is the zero handle.
var NoID ID

// Valid reports whether the handle was ever issued by a Tree. It does not
// check whether the target is still alive; use [Tree.Alive] for that.
func (id ID) Valid() bool {
	return id.gen != 0
}

// Index returns the arena slot index of the handle. Hosts can use it to keep
// parallel lookup tables.
func (id ID) Index() int {
	return int(id.index)
}

// AxisFunc computes a size or position from the size of the parent's content
// box along the same axis.
type AxisFunc func(parentSize float64) float64

// AxisFuncs holds the optional parent-relative geometry functions of a target.
type AxisFuncs struct {
	X, Y, W, H AxisFunc
}

// Host is the render tree that owns the geometry being laid out.
type Host interface {
	// Geometry returns the current geometry of the node. It is read when the
	// node comes under flex control and as the reference size of a non-flex
	// parent for parent-relative functions.
	Geometry(id ID) (x, y, w, h float64)

	// ApplyLayout pushes computed (or restored) geometry back to the node.
	// Coordinates are relative to the parent node.
	ApplyLayout(id ID, x, y, w, h float64)

	// RequestLayout asks the host to call LayoutFlexTree(id) before the next
	// frame is produced. Repeated requests before that pass may be collapsed.
	RequestLayout(id ID)
}

// Stats counts dirty-tracking activity. Useful for debugging and tests.
type Stats struct {
	Propagations int // bottom-up steps from a target to its flex parent
	Triggers     int // RequestLayout calls
	Layouts      int // container layouts started by LayoutFlexTree
}

// slot is one arena entry. It is the flex target of a single render node.
type slot struct {
	gen  uint32
	live bool

	parent   ID
	children []ID
	visible  bool

	// Pending layout geometry. Positions are relative to the flex parent's
	// content box; sizes exclude padding.
	x, y, w, h float64

	originalX, originalY, originalW, originalH float64
	funcs                                      AxisFuncs

	// Size last pushed to the host.
	appliedW, appliedH float64

	recalc  Recalc
	enabled bool

	container    *Container
	item         *Item
	itemDisabled bool

	// childGen is bumped on every structural change that can alter the item
	// list; items is valid only while itemsGen matches it.
	childGen uint32
	itemsGen uint32
	items    []ID
}

// Tree is the arena holding the layout state of one or more render trees.
// It is not safe for concurrent use.
type Tree struct {
	host  Host
	slots []slot
	free  []uint32
	stats Stats
}

// NewTree creates an empty tree reporting to host. A nil host is allowed;
// computed geometry can then only be read back with [Tree.Layout].
func NewTree(host Host) *Tree {
	if host == nil {
		host = nopHost{}
	}
	return &Tree{host: host}
}

type nopHost struct{}

func (nopHost) Geometry(ID) (x, y, w, h float64) { return 0, 0, 0, 0 }

func (nopHost) ApplyLayout(ID, float64, float64, float64, float64) {}

func (nopHost) RequestLayout(ID) {}

// NewTarget allocates a detached, visible target.
func (t *Tree) NewTarget() ID {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[idx]
	gen := s.gen + 1
	if gen == 0 {
		gen = 1
	}
	*s = slot{gen: gen, live: true, visible: true, childGen: 1}
	return ID{index: idx, gen: gen}
}

// Release detaches the target and frees its slot. Its children are orphaned,
// not released; the host is expected to release them as well.
func (t *Tree) Release(id ID) {
	s := t.slot(id)
	if s == nil {
		return
	}
	if s.parent.Valid() {
		t.Detach(id)
	}
	children := s.children
	s.children = nil
	for _, c := range children {
		if cs := t.slot(c); cs != nil {
			cs.parent = NoID
			t.checkEnabled(c)
		}
	}
	s = t.slot(id)
	gen := s.gen
	*s = slot{gen: gen}
	t.free = append(t.free, id.index)
}

// Alive reports whether id refers to a live target.
func (t *Tree) Alive(id ID) bool {
	return t.slot(id) != nil
}

// Stats returns the activity counters.
func (t *Tree) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the activity counters.
func (t *Tree) ResetStats() {
	t.stats = Stats{}
}

func (t *Tree) slot(id ID) *slot {
	if id.gen == 0 || int(id.index) >= len(t.slots) {
		return nil
	}
	s := &t.slots[id.index]
	if !s.live || s.gen != id.gen {
		return nil
	}
	return s
}

// --- Structure ---

// Attach inserts child into parent's child list at index. An index out of
// range appends. A child that already has a parent is detached first.
func (t *Tree) Attach(parent, child ID, index int) {
	if t.slot(parent) == nil || t.slot(child) == nil || parent == child {
		return
	}
	if t.slot(child).parent.Valid() {
		t.Detach(child)
	}
	ps := t.slot(parent)
	if index < 0 || index > len(ps.children) {
		index = len(ps.children)
	}
	ps.children = append(ps.children, NoID)
	copy(ps.children[index+1:], ps.children[index:])
	ps.children[index] = child
	ps.childGen++
	t.slot(child).parent = parent
	t.setParent(child, NoID, parent)
}

// Detach removes child from its parent. No-op for a detached target.
func (t *Tree) Detach(child ID) {
	cs := t.slot(child)
	if cs == nil || !cs.parent.Valid() {
		return
	}
	from := cs.parent
	if ps := t.slot(from); ps != nil {
		for i, c := range ps.children {
			if c == child {
				copy(ps.children[i:], ps.children[i+1:])
				ps.children[len(ps.children)-1] = NoID
				ps.children = ps.children[:len(ps.children)-1]
				break
			}
		}
		ps.childGen++
	}
	cs.parent = NoID
	t.setParent(child, from, NoID)
}

// Move changes the position of child among its siblings.
func (t *Tree) Move(child ID, index int) {
	cs := t.slot(child)
	if cs == nil || !cs.parent.Valid() {
		return
	}
	ps := t.slot(cs.parent)
	if ps == nil || index < 0 || index >= len(ps.children) {
		return
	}
	old := -1
	for i, c := range ps.children {
		if c == child {
			old = i
			break
		}
	}
	if old < 0 || old == index {
		return
	}
	if old < index {
		copy(ps.children[old:], ps.children[old+1:index+1])
	} else {
		copy(ps.children[index+1:], ps.children[index:old])
	}
	ps.children[index] = child
	ps.childGen++
	if ps.container != nil {
		t.changedContents(cs.parent)
	}
}

// SetVisible toggles whether the target takes part in its flex parent's
// layout. Invisible items take no space.
func (t *Tree) SetVisible(id ID, visible bool) {
	s := t.slot(id)
	if s == nil || s.visible == visible {
		return
	}
	s.visible = visible
	if ps := t.slot(s.parent); ps != nil {
		ps.childGen++
	}
	if p := t.flexParent(id); p.Valid() {
		t.changedChildren(p)
	}
}

// Visible reports whether the target is visible.
func (t *Tree) Visible(id ID) bool {
	s := t.slot(id)
	return s != nil && s.visible
}

// Parent returns the parent of the target, or NoID.
func (t *Tree) Parent(id ID) ID {
	if s := t.slot(id); s != nil {
		return s.parent
	}
	return NoID
}

// Children returns the child list. The returned slice must not be mutated.
func (t *Tree) Children(id ID) []ID {
	if s := t.slot(id); s != nil {
		return s.children
	}
	return nil
}

// Items returns the visible flex items of a container in layout order. The
// result is cached until the container's children change and must not be
// mutated. A slice returned earlier is not modified by later changes.
func (t *Tree) Items(id ID) []ID {
	return t.items(id)
}

func (t *Tree) items(id ID) []ID {
	s := t.slot(id)
	if s == nil || s.container == nil {
		return nil
	}
	if s.itemsGen == s.childGen {
		return s.items
	}
	items := make([]ID, 0, len(s.children))
	for _, c := range s.children {
		cs := t.slot(c)
		if cs == nil || !cs.visible || cs.itemDisabled || cs.item == nil {
			continue
		}
		items = append(items, c)
	}
	s = t.slot(id)
	s.items = items
	s.itemsGen = s.childGen
	return items
}

// setParent updates flex membership after child moved from one parent to
// another. Either side may be NoID.
func (t *Tree) setParent(child, from, to ID) {
	if t.isFlexEnabled(from) {
		t.changedChildren(from)
	}
	if t.isFlexEnabled(to) {
		t.enableFlexItem(child)
		t.changedChildren(to)
	}
	t.checkEnabled(child)
}

// changedChildren invalidates the item cache and schedules a re-layout of
// the container's contents.
func (t *Tree) changedChildren(id ID) {
	if s := t.slot(id); s != nil {
		s.childGen++
	}
	t.changedContents(id)
}

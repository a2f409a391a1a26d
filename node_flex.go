package trellis

import "github.com/phanxgames/trellis/flex"

// layoutTree holds the layout targets of every live node. Like nodeIDCounter
// it is package state; trellis is single-threaded.
var layoutTree = flex.NewTree(sceneHost{})

var (
	layoutNodes   []*Node // indexed by flex.ID.Index()
	layoutQueue   []*Node // targets waiting for LayoutFlexTree
	layoutChanged []*Node // nodes whose box changed since the last drain
)

func registerLayoutNode(n *Node) {
	id := layoutTree.NewTarget()
	for len(layoutNodes) <= id.Index() {
		layoutNodes = append(layoutNodes, nil)
	}
	layoutNodes[id.Index()] = n
	n.layoutID = id
}

func unregisterLayoutNode(n *Node) {
	if !n.layoutID.Valid() {
		return
	}
	if i := n.layoutID.Index(); i < len(layoutNodes) && layoutNodes[i] == n {
		layoutNodes[i] = nil
	}
	layoutTree.Release(n.layoutID)
	n.layoutID = flex.NoID
}

func layoutNode(id flex.ID) *Node {
	i := id.Index()
	if !id.Valid() || i >= len(layoutNodes) {
		return nil
	}
	n := layoutNodes[i]
	if n == nil || n.layoutID != id {
		return nil
	}
	return n
}

// sceneHost connects the flex tree to node geometry.
type sceneHost struct{}

func (sceneHost) Geometry(id flex.ID) (x, y, w, h float64) {
	if n := layoutNode(id); n != nil {
		return n.X, n.Y, n.Width, n.Height
	}
	return 0, 0, 0, 0
}

func (sceneHost) ApplyLayout(id flex.ID, x, y, w, h float64) {
	n := layoutNode(id)
	if n == nil {
		return
	}
	if n.X == x && n.Y == y && n.Width == w && n.Height == h {
		return
	}
	n.X, n.Y, n.Width, n.Height = x, y, w, h
	n.transformDirty = true
	if !n.layoutMoved {
		n.layoutMoved = true
		layoutChanged = append(layoutChanged, n)
	}
}

func (sceneHost) RequestLayout(id flex.ID) {
	n := layoutNode(id)
	if n == nil || n.layoutQueued {
		return
	}
	n.layoutQueued = true
	layoutQueue = append(layoutQueue, n)
}

// --- Geometry ---

// SetPosition sets the node's position. For a flex item the position is an
// offset added to the position computed by its container.
func (n *Node) SetPosition(x, y float64) {
	if layoutTree.IsEnabled(n.layoutID) {
		layoutTree.SetOriginalPosition(n.layoutID, x, y)
		return
	}
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// Position returns the position last passed to SetPosition. For nodes
// outside flex control this is the same as X and Y.
func (n *Node) Position() (x, y float64) {
	if layoutTree.IsEnabled(n.layoutID) {
		x, y, _, _ = layoutTree.Original(n.layoutID)
		return x, y
	}
	return n.X, n.Y
}

// SetSize sets the node's size. Under flex control a size of 0 lets the
// layout size that axis from the node's contents.
func (n *Node) SetSize(w, h float64) {
	if layoutTree.IsEnabled(n.layoutID) {
		layoutTree.SetOriginalSize(n.layoutID, w, h)
		return
	}
	if n.Width == w && n.Height == h {
		return
	}
	n.Width = w
	n.Height = h
	layoutTree.NotifyResized(n.layoutID)
}

// Size returns the size last passed to SetSize.
func (n *Node) Size() (w, h float64) {
	if layoutTree.IsEnabled(n.layoutID) {
		_, _, w, h = layoutTree.Original(n.layoutID)
		return w, h
	}
	return n.Width, n.Height
}

// Bounds returns the layout box in parent space.
func (n *Node) Bounds() Rect {
	return Rect{X: n.X, Y: n.Y, Width: n.Width, Height: n.Height}
}

// SetSizeFunc sizes the node relative to its parent's content box. A nil
// function keeps the fixed size on that axis.
func (n *Node) SetSizeFunc(w, h flex.AxisFunc) {
	f := layoutTree.Funcs(n.layoutID)
	f.W, f.H = w, h
	layoutTree.SetFuncs(n.layoutID, f)
}

// SetPositionFunc positions the node relative to its parent's content box.
func (n *Node) SetPositionFunc(x, y flex.AxisFunc) {
	f := layoutTree.Funcs(n.layoutID)
	f.X, f.Y = x, y
	layoutTree.SetFuncs(n.layoutID, f)
}

// --- Flex ---

// EnableFlex makes the node a flex container and returns its configuration.
// All children become flex items.
func (n *Node) EnableFlex() *flex.Container {
	layoutTree.SetEnabled(n.layoutID, true)
	return layoutTree.Container(n.layoutID)
}

// DisableFlex turns the node back into a plain group. The node and its former
// items get their original geometry back.
func (n *Node) DisableFlex() {
	layoutTree.SetEnabled(n.layoutID, false)
}

// SetFlexEnabled calls EnableFlex or DisableFlex.
func (n *Node) SetFlexEnabled(enabled bool) {
	layoutTree.SetEnabled(n.layoutID, enabled)
}

// IsFlexContainer reports whether the node lays out its children.
func (n *Node) IsFlexContainer() bool {
	return layoutTree.IsFlexContainer(n.layoutID)
}

// IsFlexItem reports whether the node is laid out by its parent.
func (n *Node) IsFlexItem() bool {
	return layoutTree.IsFlexItem(n.layoutID)
}

// Flex returns the container configuration, or nil if flex is not enabled.
func (n *Node) Flex() *flex.Container {
	return layoutTree.Container(n.layoutID)
}

// FlexItem returns the item configuration of the node. The settings apply
// whenever the node is a child of a flex container.
func (n *Node) FlexItem() *flex.Item {
	return layoutTree.Item(n.layoutID)
}

// SetFlexItemEnabled takes the node out of (false) or back into (true) its
// flex parent's layout. Item settings are kept while disabled.
func (n *Node) SetFlexItemEnabled(enabled bool) {
	layoutTree.SetItemEnabled(n.layoutID, enabled)
}

// ForceLayout schedules a full re-layout of the node on both axes.
func (n *Node) ForceLayout() {
	layoutTree.ForceLayout(n.layoutID, true, true)
}

// LayoutID returns the node's handle in the flex tree.
func (n *Node) LayoutID() flex.ID {
	return n.layoutID
}

// LayoutTree returns the flex tree shared by all nodes. Useful for reading
// dirty state and counters.
func LayoutTree() *flex.Tree {
	return layoutTree
}

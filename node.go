package trellis

import "github.com/phanxgames/trellis/flex"

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; trellis is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. Every node owns a layout target in the
// shared flex tree, so any node can become a flex container or be laid out as
// a flex item of its parent.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Layout box, relative to the parent. While the node is under flex
	// control these are written by the layout pass; change them through
	// SetPosition and SetSize, never directly.
	X, Y          float64
	Width, Height float64

	// Scale is applied around the node's origin after layout. It does not
	// affect the layout of siblings.
	ScaleX, ScaleY float64

	// Computed
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha      float64
	visible    bool
	Renderable bool

	// Color tints NodeTypeBox nodes.
	Color Color

	// Metadata
	UserData any
	EntityID uint32

	// OnLayout is called after a layout pass changed the node's box.
	OnLayout func(Rect)

	layoutID     flex.ID
	layoutQueued bool
	layoutMoved  bool

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.visible = true
	n.Renderable = true
	n.transformDirty = true
	registerLayoutNode(n)
}

// NewContainer creates a group node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a solid rectangle of the given size and color.
func NewBox(name string, w, h float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeBox, Width: w, Height: h, Color: c}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.insertChild(child, len(n.children), "AddChild")
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		panic("trellis: child index out of range")
	}
	n.insertChild(child, index, "AddChildAt")
}

func (n *Node) insertChild(child *Node, index int, op string) {
	if child == nil {
		panic("trellis: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, op+" (parent)")
		debugCheckDisposed(child, op+" (child)")
	}
	if isAncestor(child, n) {
		panic("trellis: adding child would create a cycle")
	}
	if child.Parent != nil {
		if child.Parent == n {
			// Reinsertion: the index refers to the list without the child.
			for i, c := range n.children {
				if c == child {
					if i < index {
						index--
					}
					break
				}
			}
		}
		child.Parent.removeChildByPtr(child)
		layoutTree.Detach(child.layoutID)
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	layoutTree.Attach(n.layoutID, child.layoutID, index)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	layoutTree.Detach(child.layoutID)
	markSubtreeDirty(child)
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if globalDebug {
		debugCheckDisposed(n, "RemoveChildAt")
	}
	if index < 0 || index >= len(n.children) {
		panic("trellis: child index out of range")
	}
	child := n.children[index]
	n.RemoveChild(child)
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		layoutTree.Detach(child.layoutID)
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Flex items
// are laid out in child order, so this reorders them.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("trellis: child's parent is not this node")
	}
	if index < 0 || index >= len(n.children) {
		panic("trellis: child index out of range")
	}
	oldIndex := -1
	for i, c := range n.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	layoutTree.Move(child.layoutID, index)
}

// FindByName returns the first node named name in a depth-first search of
// this subtree, including n itself, or nil.
func (n *Node) FindByName(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// --- Visibility ---

// SetVisible shows or hides the node. Hidden nodes are not drawn and take no
// space in their flex parent.
func (n *Node) SetVisible(v bool) {
	if n.visible == v {
		return
	}
	n.visible = v
	layoutTree.SetVisible(n.layoutID, v)
}

// Visible reports whether the node is visible.
func (n *Node) Visible() bool {
	return n.visible
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	unregisterLayoutNode(n)
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.OnLayout = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// depth returns the number of ancestors of n.
func (n *Node) depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

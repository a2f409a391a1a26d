package trellis

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, layout changes are forwarded to the ECS.
type EntityStore interface {
	EmitLayout(event LayoutEvent)
}

// LayoutEvent reports that a layout pass moved or resized a node.
type LayoutEvent struct {
	NodeID   uint32
	EntityID uint32
	Name     string
	Bounds   Rect // parent space
}

// maxLayoutPasses bounds the follow-up passes of one UpdateLayout call. Each
// pass lays out the targets requested by the previous one, which are always
// deeper in the tree.
const maxLayoutPasses = 64

// Scene is the top-level object that owns the node tree and runs the
// per-frame layout pass.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing. A zero alpha skips the fill.
	ClearColor Color

	updateFunc func() error
	testRunner *LayoutRunner

	commands  []RenderCommand
	layoutBuf []*Node
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{root: NewContainer("root")}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetSize resizes the root node. Flex roots below it that are sized or
// positioned with functions are laid out again.
func (s *Scene) SetSize(w, h float64) {
	s.root.SetSize(w, h)
}

// SetUpdateFunc sets a callback run at the start of every Update. Run stops
// the game loop when it returns an error.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth and child count warnings are printed, and
// per-frame layout stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// Update runs the update callback, advances the layout script if one is
// attached, lays out pending flex trees, and refreshes world transforms.
func (s *Scene) Update() error {
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.UpdateLayout()
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	return nil
}

// UpdateLayout runs every pending flex layout, outermost first, then reports
// the nodes whose box changed through Node.OnLayout and the entity store.
// It is called by Update and Draw; call it directly to read layout results
// right after changing the tree.
func (s *Scene) UpdateLayout() {
	var stats layoutStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for len(layoutQueue) > 0 && stats.passes < maxLayoutPasses {
		batch := append(s.layoutBuf[:0], layoutQueue...)
		clear(layoutQueue)
		layoutQueue = layoutQueue[:0]
		for _, n := range batch {
			n.layoutQueued = false
		}
		slices.SortStableFunc(batch, func(a, b *Node) int {
			return a.depth() - b.depth()
		})
		for _, n := range batch {
			if !n.disposed {
				layoutTree.LayoutFlexTree(n.layoutID)
			}
		}
		clear(batch)
		s.layoutBuf = batch[:0]
		stats.passes++
	}
	if len(layoutQueue) > 0 && s.debug {
		debugWarnLayoutPasses(len(layoutQueue))
	}

	stats.changed = s.drainLayoutChanges()
	stats.tree = layoutTree.Stats()
	layoutTree.ResetStats()
	if s.debug {
		stats.elapsed = time.Since(t0)
		s.debugLog(stats)
	}
}

func (s *Scene) drainLayoutChanges() int {
	changed := 0
	// OnLayout may change geometry again, so the slice can grow while draining.
	for i := 0; i < len(layoutChanged); i++ {
		n := layoutChanged[i]
		layoutChanged[i] = nil
		n.layoutMoved = false
		if n.disposed {
			continue
		}
		changed++
		b := n.Bounds()
		if n.OnLayout != nil {
			n.OnLayout(b)
		}
		if s.store != nil {
			s.store.EmitLayout(LayoutEvent{
				NodeID:   n.ID,
				EntityID: n.EntityID,
				Name:     n.Name,
				Bounds:   b,
			})
		}
	}
	layoutChanged = layoutChanged[:0]
	return changed
}

// Draw lays out pending flex trees and renders every visible box.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.UpdateLayout()
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)
	s.submit(screen)
}

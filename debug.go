package trellis

import (
	"fmt"
	"os"
	"time"

	"github.com/phanxgames/trellis/flex"
)

// layoutStats holds per-frame layout metrics.
// Only populated when Scene.debug is true.
type layoutStats struct {
	passes  int
	changed int
	elapsed time.Duration
	tree    flex.Stats
}

// debugLog prints layout stats to stderr. Frames without layout work are
// not logged.
func (s *Scene) debugLog(stats layoutStats) {
	if !s.debug || (stats.passes == 0 && stats.tree.Propagations == 0) {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] layout: %v | passes: %d | containers: %d | changed nodes: %d\n",
		stats.elapsed, stats.passes, stats.tree.Layouts, stats.changed)
	_, _ = fmt.Fprintf(os.Stderr,
		"[trellis] propagations: %d | triggers: %d\n",
		stats.tree.Propagations, stats.tree.Triggers)
}

// debugWarnLayoutPasses reports layout requests left over after
// maxLayoutPasses. They run on the next frame.
func debugWarnLayoutPasses(pending int) {
	_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: %d layout requests deferred after %d passes\n",
		pending, maxLayoutPasses)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("trellis debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := n.depth() + 1
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[trellis] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// DumpLayout writes the layout boxes of the subtree rooted at n to stderr,
// one node per line, indented by depth.
func DumpLayout(n *Node) {
	dumpLayout(n, 0)
}

func dumpLayout(n *Node, indent int) {
	kind := ""
	switch {
	case n.IsFlexContainer():
		c := n.Flex()
		kind = fmt.Sprintf(" flex(%s)", c.Direction())
	case n.IsFlexItem():
		kind = " item"
	}
	_, _ = fmt.Fprintf(os.Stderr, "[trellis] %*s%q%s x=%g y=%g w=%g h=%g\n",
		indent*2, "", n.Name, kind, n.X, n.Y, n.Width, n.Height)
	for _, c := range n.children {
		dumpLayout(c, indent+1)
	}
}

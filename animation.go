package trellis

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenGrow, TweenPadding, TweenColor, TweenAlpha) and call Update(dt) each
// frame. Values are written through the node's setters, so tweening a flex
// item or container schedules the layout it needs. If the target node is
// disposed, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	apply  func(v *[4]float64)
	target *Node
	Done   bool
}

func newTweenGroup(node *Node, duration float32, fn ease.TweenFunc, from, to []float64, apply func(v *[4]float64)) *TweenGroup {
	g := &TweenGroup{count: len(from), target: node, apply: apply}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
		g.values[i] = from[i]
	}
	return g
}

// Update advances all tweens by dt seconds and applies the values to the
// target. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	g.apply(&g.values)
}

// TweenPosition animates the node's position (its offset, for a flex item)
// to the given coordinates.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	x, y := node.Position()
	return newTweenGroup(node, duration, fn, []float64{x, y}, []float64{toX, toY}, func(v *[4]float64) {
		node.SetPosition(v[0], v[1])
	})
}

// TweenSize animates the node's size. Under flex control every step
// re-lays out the axes that changed.
func TweenSize(node *Node, toW, toH float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	w, h := node.Size()
	return newTweenGroup(node, duration, fn, []float64{w, h}, []float64{toW, toH}, func(v *[4]float64) {
		node.SetSize(v[0], v[1])
	})
}

// TweenGrow animates the flex grow factor of the node.
func TweenGrow(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	item := node.FlexItem()
	return newTweenGroup(node, duration, fn, []float64{item.Grow()}, []float64{to}, func(v *[4]float64) {
		item.SetGrow(v[0])
	})
}

// TweenPadding animates all four paddings of a flex container. It returns
// nil if flex is not enabled on the node.
func TweenPadding(node *Node, toTop, toRight, toBottom, toLeft float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := node.Flex()
	if c == nil {
		return nil
	}
	top, right, bottom, left := c.Padding()
	return newTweenGroup(node, duration, fn,
		[]float64{top, right, bottom, left},
		[]float64{toTop, toRight, toBottom, toLeft},
		func(v *[4]float64) {
			c.SetPaddings(v[0], v[1], v[2], v[3])
		})
}

// TweenColor animates all four components of node.Color to the target color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := node.Color
	return newTweenGroup(node, duration, fn,
		[]float64{from.R, from.G, from.B, from.A},
		[]float64{to.R, to.G, to.B, to.A},
		func(v *[4]float64) {
			node.Color = Color{v[0], v[1], v[2], v[3]}
		})
}

// TweenAlpha animates node.Alpha to the target value.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, []float64{node.Alpha}, []float64{to}, func(v *[4]float64) {
		node.SetAlpha(v[0])
	})
}

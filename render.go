package trellis

import "github.com/hajimehoshi/ebiten/v2"

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandBox     CommandType = iota // filled layout box
	CommandOutline                    // debug outline of a flex container
)

// outlineWidth is the stroke width of debug outlines, in screen pixels.
const outlineWidth = 1

// color32 is a compact RGBA color using float32, for render commands only.
type color32 struct {
	R, G, B, A float32
}

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type      CommandType
	Transform [6]float32
	Width     float32
	Height    float32
	Color     color32
}

// debugOutlineColor marks flex containers in debug mode.
var debugOutlineColor = color32{1, 0, 1, 1}

// affine32 converts a [6]float64 affine matrix to [6]float32.
func affine32(m [6]float64) [6]float32 {
	return [6]float32{float32(m[0]), float32(m[1]), float32(m[2]), float32(m[3]), float32(m[4]), float32(m[5])}
}

// traverse walks the node tree depth-first, updating transforms and emitting
// render commands in tree order for visible nodes.
func (s *Scene) traverse(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !n.visible {
		return
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	if n.Renderable && n.Type == NodeTypeBox && n.Width > 0 && n.Height > 0 {
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandBox,
			Transform: affine32(n.worldTransform),
			Width:     float32(n.Width),
			Height:    float32(n.Height),
			Color:     color32{float32(n.Color.R), float32(n.Color.G), float32(n.Color.B), float32(n.Color.A * n.worldAlpha)},
		})
	}

	for _, child := range n.children {
		s.traverse(child, n.worldTransform, n.worldAlpha, recompute)
	}

	if s.debug && n.IsFlexContainer() {
		s.commands = append(s.commands, RenderCommand{
			Type:      CommandOutline,
			Transform: affine32(n.worldTransform),
			Width:     float32(n.Width),
			Height:    float32(n.Height),
			Color:     debugOutlineColor,
		})
	}
}

// submit draws the emitted commands in order.
func (s *Scene) submit(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandBox:
			drawQuad(target, &op, cmd, 0, 0, float64(cmd.Width), float64(cmd.Height))
		case CommandOutline:
			w, h := float64(cmd.Width), float64(cmd.Height)
			drawQuad(target, &op, cmd, 0, 0, w, outlineWidth)
			drawQuad(target, &op, cmd, 0, h-outlineWidth, w, outlineWidth)
			drawQuad(target, &op, cmd, 0, 0, outlineWidth, h)
			drawQuad(target, &op, cmd, w-outlineWidth, 0, outlineWidth, h)
		}
	}
}

// drawQuad draws the local rectangle (x, y, w, h) of cmd as a tinted,
// scaled WhitePixel.
func drawQuad(target *ebiten.Image, op *ebiten.DrawImageOptions, cmd *RenderCommand, x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	op.GeoM.Reset()
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(commandGeoM(cmd))
	op.ColorScale.Reset()
	a := cmd.Color.A
	op.ColorScale.Scale(cmd.Color.R*a, cmd.Color.G*a, cmd.Color.B*a, a)
	target.DrawImage(WhitePixel, op)
}

// commandGeoM converts a command's affine transform to an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, float64(cmd.Transform[0]))
	m.SetElement(1, 0, float64(cmd.Transform[1]))
	m.SetElement(0, 1, float64(cmd.Transform[2]))
	m.SetElement(1, 1, float64(cmd.Transform[3]))
	m.SetElement(0, 2, float64(cmd.Transform[4]))
	m.SetElement(1, 2, float64(cmd.Transform[5]))
	return m
}

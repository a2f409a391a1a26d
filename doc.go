// Package trellis is a retained-mode 2D scene graph for [Ebitengine] with
// incremental flexbox layout.
//
// Every [Node] can become a flex container with [Node.EnableFlex]; its
// visible children are then laid out as flex items following the CSS
// flexible box model. Layout is incremental: changing a size, a flex
// property or the child list marks only the affected containers dirty, and
// the next [Scene.Update] or [Scene.Draw] lays out the outermost dirty
// trees once.
//
// # Quick start
//
//	scene := trellis.NewScene()
//
//	bar := trellis.NewContainer("toolbar")
//	bar.SetSizeFunc(func(w float64) float64 { return w }, nil)
//	bar.SetSize(0, 48)
//	c := bar.EnableFlex()
//	c.SetJustifyContent(flex.SpaceBetween)
//	c.SetAlignItems(flex.AlignCenter)
//	c.SetPadding(8)
//
//	for i := 0; i < 3; i++ {
//		bar.AddChild(trellis.NewBox("button", 80, 32, trellis.ColorWhite))
//	}
//	scene.Root().AddChild(bar)
//
//	trellis.Run(scene, trellis.RunConfig{Title: "Toolbar", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Geometry
//
// [Node.X], [Node.Y], [Node.Width] and [Node.Height] are the node's box in
// parent space; boxes include the container's padding. Under flex control
// they are written by the layout pass, so use [Node.SetPosition] and
// [Node.SetSize] to change them: for a flex item the position is an offset
// from the computed position, and a size of 0 lets the layout size that axis.
// [Node.SetSizeFunc] and [Node.SetPositionFunc] make geometry relative to
// the parent's content box.
//
// # Styles, scripts and ECS
//
// [LoadStyleSheet] reads named flex styles from TOML. [LoadLayoutScript]
// plays JSON scripts of mutations and expected boxes, for tests and demos.
// Tweens (via [gween]) animate sizes, grow factors and paddings through the
// layout. The trellis/ecs package forwards layout changes to a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package trellis

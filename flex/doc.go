// Package flex is an incremental flexbox layout engine for retained-mode
// scene graphs.
//
// Layout state lives in a [Tree]: an arena of targets addressed by stable
// [ID] handles. A render tree mirrors its structure into the arena
// ([Tree.Attach], [Tree.Detach], [Tree.Move], [Tree.SetVisible]) and receives
// computed geometry back through the [Host] interface.
//
// Any target can become a flex container ([Tree.SetEnabled]); its visible
// children then participate as flex items. Container and item settings are
// edited through [Container] and [Item]. Every change marks the affected
// target with a [Recalc] state and decides, bottom-up, how far the change can
// reach: either the nearest ancestor whose own size cannot change is asked to
// re-layout its contents, or the root of the flex tree is re-laid out. The
// host is told via [Host.RequestLayout] and is expected to call
// [Tree.LayoutFlexTree] once per frame for each requested target.
//
// The layout pass follows the CSS flexible box algorithm: items are broken
// into lines, free space on each line is distributed by grow and shrink
// factors under min/max constraints, items are positioned with
// justify-content, and lines and items are aligned on the cross axis with
// align-content, align-items and align-self.
//
// Sizes are content-box sizes: a container's padding is added around the
// size computed for it, and item margins are added around the item's box.
package flex

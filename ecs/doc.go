// Package ecs provides ECS adapters for trellis layout events.
//
// The primary adapter is [NewDonburiStore], which publishes every node box
// change made by a layout pass into a [Donburi] world as a typed event.
// Subscribe to [LayoutEventType] in your ECS systems to keep entity state
// (hit areas, physics bodies, labels) in sync with the layout.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

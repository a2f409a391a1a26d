package ecs

import (
	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for trellis layout events.
var LayoutEventType = events.NewEventType[trellis.LayoutEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Layout events are published to LayoutEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) trellis.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitLayout(event trellis.LayoutEvent) {
	LayoutEventType.Publish(s.world, event)
}

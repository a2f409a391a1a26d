package ecs

import (
	"testing"

	"github.com/phanxgames/trellis"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitLayout(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []trellis.LayoutEvent
	LayoutEventType.Subscribe(world, func(w donburi.World, e trellis.LayoutEvent) {
		received = append(received, e)
	})

	store.EmitLayout(trellis.LayoutEvent{
		NodeID:   7,
		EntityID: 42,
		Name:     "panel",
		Bounds:   trellis.Rect{X: 10, Y: 20, Width: 100, Height: 50},
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before processing", len(received))
	}
	LayoutEventType.ProcessEvents(world)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	e := received[0]
	if e.EntityID != 42 || e.Name != "panel" {
		t.Errorf("event: %+v", e)
	}
	if e.Bounds.Width != 100 || e.Bounds.Height != 50 {
		t.Errorf("event bounds: %+v", e.Bounds)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store trellis.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_SceneLayout(t *testing.T) {
	world := donburi.NewWorld()
	scene := trellis.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	row := trellis.NewContainer("row")
	row.SetSize(300, 40)
	row.EnableFlex()
	a := trellis.NewBox("a", 0, 20, trellis.ColorWhite)
	a.EntityID = 1
	a.FlexItem().SetGrow(1)
	b := trellis.NewBox("b", 100, 20, trellis.ColorWhite)
	b.EntityID = 2
	row.AddChild(a)
	row.AddChild(b)
	scene.Root().AddChild(row)

	got := map[uint32]trellis.Rect{}
	LayoutEventType.Subscribe(world, func(w donburi.World, e trellis.LayoutEvent) {
		if e.EntityID != 0 {
			got[e.EntityID] = e.Bounds
		}
	})

	scene.UpdateLayout()
	events.ProcessAllEvents(world)

	if r := got[1]; r.Width != 200 || r.Height != 20 {
		t.Errorf("entity 1 bounds = %+v, want 200x20", r)
	}
	if r := got[2]; r.X != 200 || r.Width != 100 {
		t.Errorf("entity 2 bounds = %+v, want x=200 w=100", r)
	}
}

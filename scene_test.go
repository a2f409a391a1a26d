package trellis

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/trellis/flex"
)

func TestNewScene(t *testing.T) {
	s := NewScene()
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.Root().Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

func TestSceneSetSize(t *testing.T) {
	s := NewScene()
	s.SetSize(640, 480)
	if s.root.Width != 640 || s.root.Height != 480 {
		t.Errorf("root size = (%v, %v), want (640, 480)", s.root.Width, s.root.Height)
	}
}

// --- Layout pass ---

func TestUpdateLayoutNested(t *testing.T) {
	s := NewScene()
	outer := NewContainer("outer")
	outer.EnableFlex()
	inner := NewContainer("inner")
	inner.EnableFlex().SetDirection(flex.Column)
	leaf := NewBox("leaf", 50, 10, ColorWhite)
	inner.AddChild(leaf)
	outer.AddChild(inner)
	outer.AddChild(NewBox("side", 20, 30, ColorWhite))
	s.Root().AddChild(outer)
	s.UpdateLayout()

	if outer.Width != 70 || outer.Height != 30 {
		t.Errorf("outer = %vx%v, want 70x30", outer.Width, outer.Height)
	}

	leaf.SetSize(60, 10)
	s.UpdateLayout()
	if outer.Width != 80 {
		t.Errorf("outer width = %v, want 80", outer.Width)
	}
	if len(layoutQueue) != 0 {
		t.Errorf("layout queue = %d, want empty", len(layoutQueue))
	}
	for _, n := range []*Node{outer, inner, leaf} {
		if layoutTree.IsChanged(n.LayoutID()) {
			t.Errorf("%s still dirty", n.Name)
		}
	}
}

func TestUpdateLayoutSkipsDisposed(t *testing.T) {
	s := NewScene()
	row := flexRow("row", 100, 10)
	s.Root().AddChild(row)
	row.Dispose()
	s.UpdateLayout() // no panic
	if len(layoutQueue) != 0 {
		t.Errorf("layout queue = %d, want empty", len(layoutQueue))
	}
}

func TestSceneUpdateRunsLayoutAndTransforms(t *testing.T) {
	s := NewScene()
	row := flexRow("row", 300, 10)
	row.SetPosition(10, 20)
	a := NewBox("a", 100, 10, ColorWhite)
	b := NewBox("b", 50, 10, ColorWhite)
	row.AddChild(a)
	row.AddChild(b)
	s.Root().AddChild(row)

	if err := s.Update(); err != nil {
		t.Fatal(err)
	}
	if x, y := b.LocalToWorld(0, 0); x != 110 || y != 20 {
		t.Errorf("b world origin = (%v, %v), want (110, 20)", x, y)
	}
}

func TestSceneUpdateFuncError(t *testing.T) {
	s := NewScene()
	want := errors.New("stop")
	calls := 0
	s.SetUpdateFunc(func() error {
		calls++
		return want
	})
	if err := s.Update(); !errors.Is(err, want) {
		t.Errorf("Update() = %v, want %v", err, want)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

type recordingStore struct {
	events []LayoutEvent
}

func (r *recordingStore) EmitLayout(e LayoutEvent) {
	r.events = append(r.events, e)
}

func TestSceneEmitsLayoutEvents(t *testing.T) {
	s := NewScene()
	store := &recordingStore{}
	s.SetEntityStore(store)

	row := flexRow("row", 300, 10)
	a := NewBox("a", 0, 10, ColorWhite)
	a.EntityID = 9
	a.FlexItem().SetGrow(1)
	row.AddChild(a)
	s.Root().AddChild(row)
	s.UpdateLayout()

	var got *LayoutEvent
	for i := range store.events {
		if store.events[i].EntityID == 9 {
			got = &store.events[i]
		}
	}
	if got == nil {
		t.Fatal("no event for entity 9")
	}
	if got.Name != "a" || got.Bounds != (Rect{0, 0, 300, 10}) {
		t.Errorf("event = %+v", *got)
	}

	n := len(store.events)
	s.UpdateLayout()
	if len(store.events) != n {
		t.Errorf("events after idle pass = %d, want %d", len(store.events), n)
	}
}

func TestSceneDraw(t *testing.T) {
	s := NewScene()
	s.ClearColor = Color{0, 0, 0, 1}
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	row := flexRow("row", 64, 16)
	row.AddChild(NewBox("a", 16, 16, Color{1, 0, 0, 1}))
	row.AddChild(NewBox("b", 16, 16, Color{0, 1, 0, 1}))
	s.Root().AddChild(row)

	screen := ebiten.NewImage(64, 16)
	s.Draw(screen)

	// Two boxes plus the outline of the flex container.
	if len(s.commands) != 3 {
		t.Fatalf("commands = %d, want 3", len(s.commands))
	}
	if s.commands[0].Type != CommandBox || s.commands[2].Type != CommandOutline {
		t.Errorf("command types = %v, %v, %v", s.commands[0].Type, s.commands[1].Type, s.commands[2].Type)
	}
	if x := s.commands[1].Transform[4]; x != 16 {
		t.Errorf("second box tx = %v, want 16", x)
	}
}

func TestSceneDrawSkipsHidden(t *testing.T) {
	s := NewScene()
	a := NewBox("a", 10, 10, ColorWhite)
	b := NewBox("b", 10, 10, ColorWhite)
	b.SetVisible(false)
	s.Root().AddChild(a)
	s.Root().AddChild(b)

	s.Draw(ebiten.NewImage(16, 16))
	if len(s.commands) != 1 {
		t.Errorf("commands = %d, want 1", len(s.commands))
	}
}

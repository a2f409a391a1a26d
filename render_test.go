package trellis

import "testing"

func TestCommandGeoM(t *testing.T) {
	cmd := RenderCommand{Transform: [6]float32{2, 0, 0, 3, 10, 20}}
	m := commandGeoM(&cmd)
	x, y := m.Apply(1, 1)
	if x != 12 || y != 23 {
		t.Errorf("Apply(1, 1) = (%v, %v), want (12, 23)", x, y)
	}
}

func TestTraverseSkipsEmptyAndContainers(t *testing.T) {
	s := NewScene()
	s.Root().AddChild(NewBox("empty", 0, 10, ColorWhite))
	s.Root().AddChild(NewContainer("group"))
	hidden := NewBox("off", 10, 10, ColorWhite)
	hidden.Renderable = false
	s.Root().AddChild(hidden)
	s.Root().AddChild(NewBox("on", 10, 10, ColorWhite))

	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1, false)
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
	if s.commands[0].Width != 10 {
		t.Errorf("Width = %v, want 10", s.commands[0].Width)
	}
}

func TestTraverseAppliesAlpha(t *testing.T) {
	s := NewScene()
	g := NewContainer("group")
	g.SetAlpha(0.5)
	b := NewBox("b", 10, 10, Color{1, 1, 1, 0.5})
	g.AddChild(b)
	s.Root().AddChild(g)

	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1, false)
	if len(s.commands) != 1 {
		t.Fatalf("commands = %d, want 1", len(s.commands))
	}
	if a := s.commands[0].Color.A; a != 0.25 {
		t.Errorf("alpha = %v, want 0.25", a)
	}
}

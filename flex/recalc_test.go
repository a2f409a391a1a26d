package flex

import "testing"

// --- Propagation ---

func TestPropagationTerminates(t *testing.T) {
	f := newFixture()
	c0 := f.container(0, 0, Row)
	c1 := f.container(0, 0, Row)
	c2 := f.container(0, 0, Row)
	leaf := f.box(50, 10)
	f.add(c2, leaf)
	f.add(c1, c2)
	f.add(c0, c1)
	f.layout()

	f.tree.ResetStats()
	f.host.requests = nil
	f.tree.SetOriginalSize(leaf, 60, 10)

	st := f.tree.Stats()
	if st.Propagations != 3 {
		t.Errorf("Propagations = %d, want 3", st.Propagations)
	}
	if st.Triggers != 1 {
		t.Errorf("Triggers = %d, want 1", st.Triggers)
	}
	if len(f.host.requests) != 1 || f.host.requests[0] != c0 {
		t.Errorf("requests = %v, want [%v]", f.host.requests, c0)
	}

	// Nothing new to report: the leaf triggers itself without walking up.
	f.tree.SetOriginalSize(leaf, 70, 10)
	if st := f.tree.Stats(); st.Propagations != 3 {
		t.Errorf("Propagations after repeat = %d, want 3", st.Propagations)
	}

	f.layout()
	if w := f.rect(c0)[2]; w != 70 {
		t.Errorf("root width = %v, want 70", w)
	}
	for _, id := range []ID{c0, c1, c2, leaf} {
		if f.tree.IsChanged(id) {
			t.Errorf("target %v still dirty", id)
		}
	}
}

func TestFixedContainerStopsPropagation(t *testing.T) {
	f := newFixture()
	root := f.container(0, 0, Row)
	mid := f.container(200, 50, Row)
	leaf := f.box(50, 10)
	f.add(mid, leaf)
	f.add(root, mid)
	f.layout()

	f.tree.ResetStats()
	f.host.requests = nil
	f.tree.SetOriginalSize(leaf, 80, 10)

	if st := f.tree.Stats(); st.Propagations != 1 {
		t.Errorf("Propagations = %d, want 1", st.Propagations)
	}
	if got := f.tree.Recalc(mid); got != (Recalc{Changed: true}) {
		t.Errorf("mid recalc = %+v, want changed only", got)
	}
	if f.tree.IsChanged(root) {
		t.Error("root marked dirty by a change inside a fixed-size child")
	}
	if len(f.host.requests) != 1 || f.host.requests[0] != mid {
		t.Errorf("requests = %v, want [%v]", f.host.requests, mid)
	}
}

func TestWrapWidensToCrossAxis(t *testing.T) {
	f := newFixture()
	root := f.container(200, 0, Row)
	f.tree.Container(root).SetWrap(true)
	a := f.box(50, 10)
	f.add(root, a)
	f.layout()

	f.tree.SetOriginalSize(a, 120, 10)
	want := Recalc{Changed: true, Vertical: true}
	if got := f.tree.Recalc(root); got != want {
		t.Errorf("root recalc = %+v, want %+v", got, want)
	}
}

func TestShrunkWidensToMainAxis(t *testing.T) {
	f := newFixture()
	root := f.container(100, 0, Row)
	a, b := f.box(80, 10), f.box(80, 10)
	f.add(root, a, b)
	f.tree.Item(a).SetShrink(Shrink(1))
	f.layout()
	if !f.tree.Container(root).Shrunk() {
		t.Fatal("Shrunk() = false, want true")
	}

	// A height-only change still reaches the main axis of a shrunk parent.
	f.tree.SetOriginalSize(b, 80, 20)
	want := Recalc{Changed: true, Horizontal: true, Vertical: true}
	if got := f.tree.Recalc(root); got != want {
		t.Errorf("root recalc = %+v, want %+v", got, want)
	}
	f.layout()
	if h := f.rect(root)[3]; h != 20 {
		t.Errorf("root height = %v, want 20", h)
	}
}

func TestMinMaxForcesSingleAxis(t *testing.T) {
	f := newFixture()
	root := f.container(300, 100, Row)
	a := f.box(50, 10)
	f.add(root, a)
	f.layout()

	f.tree.Item(a).SetMinWidth(70)
	want := Recalc{Changed: true, Horizontal: true}
	if got := f.tree.Recalc(a); got != want {
		t.Errorf("item recalc = %+v, want %+v", got, want)
	}
	f.layout()
	if w := f.rect(a)[2]; w != 70 {
		t.Errorf("width = %v, want 70", w)
	}
	if f.tree.IsChanged(a) {
		t.Error("item still dirty after pass")
	}
}

func TestSubtreeLayout(t *testing.T) {
	f := newFixture()
	root := f.container(300, 100, Row)
	inner := f.container(100, 50, Row)
	a := f.box(20, 20)
	f.add(inner, a)
	f.add(root, f.box(30, 30), inner)
	f.layout()
	before := f.rect(inner)

	f.tree.ResetStats()
	f.host.requests = nil
	f.tree.Container(inner).SetJustifyContent(Center)
	if f.tree.IsChanged(root) {
		t.Error("root dirty after a contents-only change of a fixed child")
	}
	f.layout()

	if st := f.tree.Stats(); st.Layouts != 1 {
		t.Errorf("Layouts = %d, want 1", st.Layouts)
	}
	if got := f.rect(inner); got != before {
		t.Errorf("inner rect = %v, want %v", got, before)
	}
	if x := f.rect(a)[0]; x != 40 {
		t.Errorf("item x = %v, want 40", x)
	}
}

func TestItemOffsetOnlyChange(t *testing.T) {
	f := newFixture()
	root := f.container(300, 100, Row)
	a := f.box(20, 20)
	f.add(root, a)
	f.layout()

	f.host.requests = nil
	f.tree.SetOriginalPosition(a, 7, 0)
	if f.tree.IsChanged(root) {
		t.Error("root dirty after an offset change")
	}
	f.layout()
	if x := f.rect(a)[0]; x != 7 {
		t.Errorf("x = %v, want 7", x)
	}
}

// --- Enablement ---

func TestDisableRestoresOriginals(t *testing.T) {
	f := newFixture()
	root := f.box(300, 0)
	f.host.geom[root] = [4]float64{5, 6, 300, 0}
	a := f.box(100, 10)
	f.host.geom[a] = [4]float64{1, 2, 100, 10}
	f.add(root, a)
	f.tree.SetEnabled(root, true)
	f.tree.Item(a).SetGrow(1)
	f.layout()

	assertRect(t, f, "root", root, [4]float64{5, 6, 300, 10})
	assertRect(t, f, "a", a, [4]float64{1, 2, 300, 10})

	f.tree.SetEnabled(root, false)
	assertRect(t, f, "root", root, [4]float64{5, 6, 300, 0})
	assertRect(t, f, "a", a, [4]float64{1, 2, 100, 10})
	if f.tree.IsEnabled(a) || f.tree.IsFlexItem(a) {
		t.Error("item still under flex control")
	}

	f.tree.SetEnabled(root, true)
	if g := f.tree.Item(a).Grow(); g != 1 {
		t.Errorf("Grow() after re-enable = %v, want 1", g)
	}
}

func TestSetItemEnabled(t *testing.T) {
	f := newFixture()
	root := f.container(300, 10, Row)
	a, b := f.box(100, 10), f.box(100, 10)
	f.add(root, a, b)
	f.layout()
	if x := f.rect(b)[0]; x != 100 {
		t.Fatalf("x = %v, want 100", x)
	}

	f.tree.SetItemEnabled(a, false)
	f.layout()
	if f.tree.IsFlexItem(a) {
		t.Error("IsFlexItem() = true after disabling")
	}
	if x := f.rect(b)[0]; x != 0 {
		t.Errorf("x = %v, want 0", x)
	}

	f.tree.SetItemEnabled(a, true)
	f.layout()
	if x := f.rect(b)[0]; x != 100 {
		t.Errorf("x after re-enable = %v, want 100", x)
	}
}

func TestDisabledTargetsIgnoreForceLayout(t *testing.T) {
	f := newFixture()
	a := f.box(10, 10)
	f.tree.ForceLayout(a, true, true)
	if f.tree.IsChanged(a) {
		t.Error("plain target marked dirty")
	}
	if len(f.host.requests) != 0 {
		t.Errorf("requests = %v, want none", f.host.requests)
	}
}

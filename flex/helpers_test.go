package flex

import (
	"math"
	"sort"
	"testing"
)

// fakeHost records geometry and layout requests in memory.
type fakeHost struct {
	geom     map[ID][4]float64
	requests []ID
	applied  int
}

func (fh *fakeHost) Geometry(id ID) (x, y, w, h float64) {
	g := fh.geom[id]
	return g[0], g[1], g[2], g[3]
}

func (fh *fakeHost) ApplyLayout(id ID, x, y, w, h float64) {
	fh.geom[id] = [4]float64{x, y, w, h}
	fh.applied++
}

func (fh *fakeHost) RequestLayout(id ID) {
	fh.requests = append(fh.requests, id)
}

type fixture struct {
	host *fakeHost
	tree *Tree
}

func newFixture() *fixture {
	host := &fakeHost{geom: make(map[ID][4]float64)}
	return &fixture{host: host, tree: NewTree(host)}
}

// box creates a detached target whose host node has the given size.
func (f *fixture) box(w, h float64) ID {
	id := f.tree.NewTarget()
	f.host.geom[id] = [4]float64{0, 0, w, h}
	return id
}

// container creates a flex container with the given original size.
func (f *fixture) container(w, h float64, d Direction) ID {
	id := f.box(w, h)
	f.tree.SetEnabled(id, true)
	f.tree.Container(id).SetDirection(d)
	return id
}

func (f *fixture) add(parent ID, children ...ID) {
	for _, c := range children {
		f.tree.Attach(parent, c, -1)
	}
}

func (f *fixture) depth(id ID) int {
	d := 0
	for p := f.tree.Parent(id); p.Valid(); p = f.tree.Parent(p) {
		d++
	}
	return d
}

// layout runs every requested layout, outermost first, until none remain.
func (f *fixture) layout() {
	for len(f.host.requests) > 0 {
		reqs := f.host.requests
		f.host.requests = nil
		sort.SliceStable(reqs, func(i, j int) bool {
			return f.depth(reqs[i]) < f.depth(reqs[j])
		})
		for _, id := range reqs {
			f.tree.LayoutFlexTree(id)
		}
	}
}

func (f *fixture) rect(id ID) [4]float64 {
	return f.host.geom[id]
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func assertRect(t *testing.T, f *fixture, name string, id ID, want [4]float64) {
	t.Helper()
	got := f.rect(id)
	for i := range got {
		if !approx(got[i], want[i]) {
			t.Errorf("%s rect = %v, want %v", name, got, want)
			return
		}
	}
}

package trellis

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/trellis/flex"
)

// setupBenchGrid creates a scene with a wrapping grid of n cards, each a
// column container holding a title bar and a body box.
func setupBenchGrid(n int) (*Scene, []*Node) {
	s := NewScene()
	grid := NewContainer("grid")
	grid.SetSize(1280, 0)
	c := grid.EnableFlex()
	c.SetWrap(true)
	c.SetJustifyContent(flex.SpaceEvenly)
	c.SetPadding(8)

	cards := make([]*Node, 0, n)
	for i := 0; i < n; i++ {
		card := NewBox("card", 0, 0, ColorWhite)
		card.EnableFlex().SetDirection(flex.Column)
		card.FlexItem().SetMargin(4)
		card.AddChild(NewBox("title", 80, 12, ColorWhite))
		card.AddChild(NewBox("body", 80, 40, ColorWhite))
		grid.AddChild(card)
		cards = append(cards, card)
	}
	s.Root().AddChild(grid)
	s.UpdateLayout()
	return s, cards
}

// --- Layout Benchmarks ---

func BenchmarkLayout_1000Cards_Full(b *testing.B) {
	s, cards := setupBenchGrid(1000)
	grid := cards[0].Parent

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		grid.ForceLayout()
		s.UpdateLayout()
	}
}

func BenchmarkLayout_1000Cards_OneLeaf(b *testing.B) {
	s, cards := setupBenchGrid(1000)
	leaf := cards[500].ChildAt(1)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		leaf.SetSize(80, float64(40+i%2))
		s.UpdateLayout()
	}
}

func BenchmarkLayout_1000Cards_Offset(b *testing.B) {
	s, cards := setupBenchGrid(1000)
	card := cards[500]

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		card.SetPosition(float64(i%4), 0)
		s.UpdateLayout()
	}
}

func BenchmarkLayout_Idle(b *testing.B) {
	s, _ := setupBenchGrid(1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.UpdateLayout()
	}
}

// --- Draw Benchmarks ---

func BenchmarkDraw_1000Cards(b *testing.B) {
	s, _ := setupBenchGrid(1000)
	screen := ebiten.NewImage(1280, 720)
	s.Draw(screen) // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Draw(screen)
	}
}

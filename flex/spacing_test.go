package flex

import "testing"

func TestSpacingModes(t *testing.T) {
	tests := []struct {
		mode    SpacingMode
		count   int
		free    float64
		before  float64
		between float64
	}{
		{FlexStart, 3, 90, 0, 0},
		{FlexEnd, 3, 90, 90, 0},
		{Center, 3, 90, 45, 0},
		{SpaceBetween, 3, 90, 0, 45},
		{SpaceAround, 3, 90, 15, 30},
		{SpaceEvenly, 3, 90, 22.5, 22.5},
		{Stretch, 3, 90, 0, 0},
		{SpaceBetween, 4, -30, 0, -10},
		{Center, 2, -40, -20, 0},
	}
	for _, tt := range tests {
		before, between := Spacing(tt.mode, tt.count, tt.free)
		if !approx(before, tt.before) || !approx(between, tt.between) {
			t.Errorf("Spacing(%v, %d, %v) = (%v, %v), want (%v, %v)",
				tt.mode, tt.count, tt.free, before, between, tt.before, tt.between)
		}
	}
}

func TestSpacingSingleItem(t *testing.T) {
	for _, mode := range []SpacingMode{FlexStart, SpaceBetween, Stretch} {
		before, between := Spacing(mode, 1, 100)
		if before != 0 || between != 0 {
			t.Errorf("Spacing(%v, 1, 100) = (%v, %v), want (0, 0)", mode, before, between)
		}
	}
	if before, _ := Spacing(FlexEnd, 1, 100); before != 100 {
		t.Errorf("Spacing(flex-end, 1, 100) before = %v, want 100", before)
	}
	if before, _ := Spacing(Center, 1, 100); before != 50 {
		t.Errorf("Spacing(center, 1, 100) before = %v, want 50", before)
	}
	// A lone item is centered by the distributing modes.
	if before, _ := Spacing(SpaceAround, 1, 100); before != 50 {
		t.Errorf("Spacing(space-around, 1, 100) before = %v, want 50", before)
	}
	if before, _ := Spacing(SpaceEvenly, 1, 100); before != 50 {
		t.Errorf("Spacing(space-evenly, 1, 100) before = %v, want 50", before)
	}
}

func TestSpacingNoItems(t *testing.T) {
	for _, mode := range []SpacingMode{FlexStart, FlexEnd, Center, SpaceBetween, SpaceAround, SpaceEvenly, Stretch} {
		before, between := Spacing(mode, 0, 100)
		if before != 0 || between != 0 {
			t.Errorf("Spacing(%v, 0, 100) = (%v, %v), want (0, 0)", mode, before, between)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if d, ok := ParseDirection("column-reverse"); !ok || d != ColumnReverse {
		t.Errorf("ParseDirection = %v, %v", d, ok)
	}
	if _, ok := ParseDirection("diagonal"); ok {
		t.Error("ParseDirection accepted an unknown keyword")
	}
	if a, ok := ParseAlign("Center"); !ok || a != AlignCenter {
		t.Errorf("ParseAlign = %v, %v", a, ok)
	}
	if m, ok := ParseSpacingMode("space-evenly"); !ok || m != SpaceEvenly {
		t.Errorf("ParseSpacingMode = %v, %v", m, ok)
	}
	if got := SpaceAround.String(); got != "space-around" {
		t.Errorf("String() = %q, want %q", got, "space-around")
	}
}

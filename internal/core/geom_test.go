package core

import "testing"

func TestGridInBounds(t *testing.T) {
	g := Grid{Size: 5}

	tests := []struct {
		name     string
		cell     Cell
		expected bool
	}{
		{name: "origin", cell: Cell{X: 0, Y: 0}, expected: true},
		{name: "center", cell: Cell{X: 2, Y: 2}, expected: true},
		{name: "far corner", cell: Cell{X: 4, Y: 4}, expected: true},
		{name: "x at size", cell: Cell{X: 5, Y: 0}, expected: false},
		{name: "y at size", cell: Cell{X: 0, Y: 5}, expected: false},
		{name: "negative x", cell: Cell{X: -1, Y: 2}, expected: false},
		{name: "negative y", cell: Cell{X: 2, Y: -1}, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.cell); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.cell, got, tc.expected)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Cell{X: 2, Y: 2}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{DirRight, Cell{X: 3, Y: 2}},
		{DirLeft, Cell{X: 1, Y: 2}},
		{DirUp, Cell{X: 2, Y: 1}},
		{DirDown, Cell{X: 2, Y: 3}},
	}

	for _, tc := range tests {
		dx, dy := tc.dir.Delta()
		if got := start.Offset(dx, dy); got != tc.expected {
			t.Errorf("%s from %v = %v, expected %v", tc.dir, start, got, tc.expected)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirRight: DirLeft,
		DirLeft:  DirRight,
		DirUp:    DirDown,
		DirDown:  DirUp,
	}

	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, expected %s", d, got, want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("Right/Bottom = %d/%d, expected 6/8", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || !r.Contains(5, 7) {
		t.Error("Corners inside the rect should be contained")
	}
	if r.Contains(6, 3) || r.Contains(2, 8) || r.Contains(1, 3) {
		t.Error("Cells on or past the far edges should not be contained")
	}
}

func TestColorState(t *testing.T) {
	base := BaseState()
	if !base.IsBase() {
		t.Error("BaseState() should report IsBase")
	}
	if _, ok := base.Phase(); ok {
		t.Error("BaseState() should not carry a phase")
	}

	p := PhaseState(3)
	if p.IsBase() {
		t.Error("PhaseState(3) should not report IsBase")
	}
	if idx, ok := p.Phase(); !ok || idx != 3 {
		t.Errorf("PhaseState(3).Phase() = %d, %v; expected 3, true", idx, ok)
	}
}

func TestCascadePaletteSize(t *testing.T) {
	if len(CascadePalette) != MaxPaletteSize {
		t.Errorf("CascadePalette has %d entries, expected %d", len(CascadePalette), MaxPaletteSize)
	}
}

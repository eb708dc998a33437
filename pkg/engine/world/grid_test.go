package world

import (
	"errors"
	"testing"
)

func TestNewGrid_AllSolid(t *testing.T) {
	g := NewGrid(6, 4)
	if g.Width() != 6 || g.Height() != 4 {
		t.Fatalf("dimensions = %dx%d, want 6x4", g.Width(), g.Height())
	}
	g.ForEachCell(func(x, y int, cell Cell) {
		if cell != Solid() {
			t.Errorf("cell (%d,%d) = %+v, want solid", x, y, cell)
		}
	})
	if n := g.WalkableCount(); n != 0 {
		t.Errorf("WalkableCount() = %d, want 0", n)
	}
}

func TestInitialize_DiscardsPriorState(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetIsWalkable(1, 1, true)
	g.Initialize(5, 2)
	if g.Width() != 5 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 5x2", g.Width(), g.Height())
	}
	if g.IsWalkable(1, 1) {
		t.Error("IsWalkable(1,1) = true after re-Initialize, want false")
	}
}

func TestInitialize_PanicsOnNonPositive(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Initialize(%d,%d) did not panic", dims[0], dims[1])
				}
			}()
			NewGrid(dims[0], dims[1])
		}()
	}
}

func TestSetCellProperties(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetCellProperties(2, 3, true, true, false)
	if got := g.CellAt(2, 3); got != Floor() {
		t.Errorf("CellAt(2,3) = %+v, want %+v", got, Floor())
	}
	g.SetCellProperties(2, 3, false, true, true)
	if g.IsWalkable(2, 3) || !g.IsTransparent(2, 3) || !g.IsExplored(2, 3) {
		t.Errorf("CellAt(2,3) = %+v, want opaque=false walkable=false explored=true", g.CellAt(2, 3))
	}
	// neighbours untouched
	if g.IsWalkable(3, 2) {
		t.Error("SetCellProperties(2,3) leaked into (3,2)")
	}
}

func TestSetIsWalkable_LeavesOtherFlags(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetCellProperties(0, 1, false, true, true)
	g.SetIsWalkable(0, 1, true)
	want := Cell{Walkable: true, Transparent: true, Explored: true}
	if got := g.CellAt(0, 1); got != want {
		t.Errorf("CellAt(0,1) = %+v, want %+v", got, want)
	}
	g.SetIsExplored(0, 1, false)
	if g.IsExplored(0, 1) {
		t.Error("SetIsExplored(false) had no effect")
	}
}

func TestInBounds(t *testing.T) {
	g := NewGrid(10, 8)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestAccessors_PanicOutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	calls := map[string]func(){
		"IsWalkable":        func() { g.IsWalkable(3, 0) },
		"SetIsWalkable":     func() { g.SetIsWalkable(0, -1, true) },
		"SetCellProperties": func() { g.SetCellProperties(-1, 0, true, true, true) },
		"CellAt":            func() { g.CellAt(0, 3) },
		"IsTransparent":     func() { g.IsTransparent(5, 5) },
		"SetIsExplored":     func() { g.SetIsExplored(3, 3, true) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok {
					t.Fatalf("panic value %T, want error", r)
				}
				var be *BoundsError
				if !errors.As(err, &be) {
					t.Fatalf("panic value %v, want *BoundsError", err)
				}
				if be.Width != 3 || be.Height != 3 {
					t.Errorf("BoundsError dims = %dx%d, want 3x3", be.Width, be.Height)
				}
			}()
			call()
		})
	}
}

func TestEqual(t *testing.T) {
	a := NewGrid(4, 4)
	b := NewGrid(4, 4)
	if !a.Equal(b) {
		t.Fatal("fresh grids should be equal")
	}
	a.SetIsWalkable(1, 2, true)
	if a.Equal(b) {
		t.Error("grids differing at (1,2) reported equal")
	}
	b.SetIsWalkable(1, 2, true)
	if !a.Equal(b) {
		t.Error("grids with identical edits reported different")
	}
	if a.Equal(NewGrid(4, 5)) {
		t.Error("grids with different dimensions reported equal")
	}
}
